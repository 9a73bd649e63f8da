package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"appraisal_desk/internal/domain/entities"
	"appraisal_desk/internal/usecase/interfaces"
	mock_interfaces "appraisal_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var quoteIDRe = regexp.MustCompile(`^Q-\d{14}-[A-Z]{4}$`)

func testLetterContext() LetterContext {
	return LetterContext{CompanyName: "Acme Appraisal Management", CompanyEmail: "desk@acme.example.com"}
}

func rfpSentOrder() entities.Order {
	return entities.Order{
		ID:              "ORD-2024-00042",
		Status:          entities.OrderStatusRFPSent,
		PropertyAddress: "123 Main St, Chicago, IL 60601",
		PropertyCity:    "Chicago",
		PropertyState:   "IL",
		PropertyType:    "Office",
		LoanAmount:      "2500000",
		ClientID:        "CLIENT-001",
		ContactName:     "Pat Jones",
		ContactEmail:    "pat@lender.example.com",
	}
}

func TestQuoteUseCase_RecordQuote(t *testing.T) {
	validInput := QuoteInput{
		OrderID:        "ORD-2024-00042",
		AppraiserID:    "APP-001",
		Fee:            3500,
		TurnaroundDays: 12,
	}

	t.Run("validation accumulates", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, testLetterContext())
		_, err := uc.RecordQuote(context.Background(), QuoteInput{Fee: -1})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Violations) != 4 {
			t.Fatalf("expected 4 violations, got %v", verr.Violations)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(entities.Order{}, 0, nil)

		uc := NewQuoteUseCase(orders, nil, nil, nil, testLetterContext())
		_, err := uc.RecordQuote(context.Background(), validInput)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("appraiser not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)
		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().FindByID(gomock.Any(), "APP-001").Return(entities.Appraiser{}, nil)

		uc := NewQuoteUseCase(orders, panel, nil, nil, testLetterContext())
		_, err := uc.RecordQuote(context.Background(), validInput)
		if !errors.Is(err, ErrAppraiserNotFound) {
			t.Fatalf("expected ErrAppraiserNotFound, got %v", err)
		}
	})

	t.Run("duplicate quote rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)
		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().FindByID(gomock.Any(), "APP-001").Return(panelAppraiser("APP-001"), nil)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return([]entities.Quote{
			{ID: "Q-20240110120000-ABCD", OrderID: "ORD-2024-00042", AppraiserID: "APP-001"},
		}, nil)

		uc := NewQuoteUseCase(orders, panel, quotes, nil, testLetterContext())
		_, err := uc.RecordQuote(context.Background(), validInput)
		if !errors.Is(err, ErrDuplicateQuote) {
			t.Fatalf("expected ErrDuplicateQuote, got %v", err)
		}
	})

	t.Run("first quote bumps rfp_sent to quotes_received", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)
		orders.EXPECT().UpdateAt(gomock.Any(), 2, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, o entities.Order) error {
				if o.Status != entities.OrderStatusQuotesReceived {
					t.Errorf("expected quotes_received, got %q", o.Status)
				}
				return nil
			})

		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().FindByID(gomock.Any(), "APP-001").Return(panelAppraiser("APP-001"), nil)

		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return(nil, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		uc := NewQuoteUseCase(orders, panel, quotes, nil, testLetterContext())
		quote, err := uc.RecordQuote(context.Background(), validInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !quoteIDRe.MatchString(quote.ID) {
			t.Errorf("unexpected quote id %q", quote.ID)
		}
		if quote.AppraiserName != "Appraiser APP-001" || quote.AppraiserEmail != "APP-001@panel.example.com" {
			t.Errorf("appraiser details not copied: %+v", quote)
		}
	})

	t.Run("status bump failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)
		orders.EXPECT().UpdateAt(gomock.Any(), 2, gomock.Any()).Return(errors.New("sheet down"))

		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().FindByID(gomock.Any(), "APP-001").Return(panelAppraiser("APP-001"), nil)

		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return(nil, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		uc := NewQuoteUseCase(orders, panel, quotes, nil, testLetterContext())
		if _, err := uc.RecordQuote(context.Background(), validInput); err != nil {
			t.Fatalf("status bump failure should not fail the quote: %v", err)
		}
	})

	t.Run("no bump when order is pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		order := rfpSentOrder()
		order.Status = entities.OrderStatusPending

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(order, 2, nil)

		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().FindByID(gomock.Any(), "APP-001").Return(panelAppraiser("APP-001"), nil)

		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return(nil, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		uc := NewQuoteUseCase(orders, panel, quotes, nil, testLetterContext())
		if _, err := uc.RecordQuote(context.Background(), validInput); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetSummary(t *testing.T) {
	t.Run("no quotes yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return(nil, nil)

		uc := NewQuoteUseCase(orders, nil, quotes, nil, testLetterContext())
		summary, err := uc.GetSummary(context.Background(), "ORD-2024-00042")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Message != "No quotes received yet" || summary.QuoteCount != 0 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if summary.Recommended != nil {
			t.Fatalf("no quotes should mean no recommendation")
		}
	})

	t.Run("ranked summary with recommendation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)

		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return([]entities.Quote{
			{ID: "Q-1", AppraiserID: "APP-001", AppraiserName: "A One", Fee: 4200, TurnaroundDays: 14},
			{ID: "Q-2", AppraiserID: "APP-002", AppraiserName: "B Two", Fee: 3100, TurnaroundDays: 9},
		}, nil)

		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "").Return(interfaces.PanelResult{
			Appraisers: []entities.Appraiser{panelAppraiser("APP-001"), panelAppraiser("APP-002")},
			Source:     "master",
		}, nil)

		uc := NewQuoteUseCase(orders, panel, quotes, nil, testLetterContext())
		summary, err := uc.GetSummary(context.Background(), "ORD-2024-00042")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.QuoteCount != 2 {
			t.Fatalf("expected 2 quotes, got %d", summary.QuoteCount)
		}
		if summary.Recommended == nil || summary.Recommended.ID != "Q-2" {
			t.Fatalf("expected Q-2 recommended, got %+v", summary.Recommended)
		}
		if summary.PropertyAddress == "" || summary.PropertyType == "" {
			t.Fatalf("order details missing from summary: %+v", summary)
		}
	})
}

func TestQuoteUseCase_SendSummary(t *testing.T) {
	t.Run("no quotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return(nil, nil)

		uc := NewQuoteUseCase(orders, nil, quotes, nil, testLetterContext())
		_, err := uc.SendSummary(context.Background(), "ORD-2024-00042", false)
		if !errors.Is(err, ErrNoQuotes) {
			t.Fatalf("expected ErrNoQuotes, got %v", err)
		}
	})

	t.Run("no client email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		order := rfpSentOrder()
		order.ContactEmail = ""

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(order, 2, nil)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return([]entities.Quote{
			{ID: "Q-1", AppraiserID: "APP-001", Fee: 3100, TurnaroundDays: 9},
		}, nil)
		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "").Return(interfaces.PanelResult{
			Appraisers: []entities.Appraiser{panelAppraiser("APP-001")},
			Source:     "master",
		}, nil)

		uc := NewQuoteUseCase(orders, panel, quotes, nil, testLetterContext())
		_, err := uc.SendSummary(context.Background(), "ORD-2024-00042", false)
		if !errors.Is(err, ErrNoClientEmail) {
			t.Fatalf("expected ErrNoClientEmail, got %v", err)
		}
	})

	t.Run("dry run previews the letter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return([]entities.Quote{
			{ID: "Q-1", AppraiserID: "APP-001", AppraiserName: "A One", Fee: 3100, TurnaroundDays: 9},
		}, nil)
		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "").Return(interfaces.PanelResult{
			Appraisers: []entities.Appraiser{panelAppraiser("APP-001")},
			Source:     "master",
		}, nil)

		uc := NewQuoteUseCase(orders, panel, quotes, nil, testLetterContext())
		delivery, err := uc.SendSummary(context.Background(), "ORD-2024-00042", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !delivery.DryRun || delivery.SentTo != "pat@lender.example.com" {
			t.Fatalf("unexpected delivery: %+v", delivery)
		}
		if !strings.Contains(delivery.Subject, "ORD-2024-00042") {
			t.Errorf("subject should name the order: %q", delivery.Subject)
		}
		if !strings.Contains(delivery.Body, "★ RECOMMENDED") {
			t.Errorf("body should flag the recommendation:\n%s", delivery.Body)
		}
	})

	t.Run("send failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return([]entities.Quote{
			{ID: "Q-1", AppraiserID: "APP-001", Fee: 3100, TurnaroundDays: 9},
		}, nil)
		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "").Return(interfaces.PanelResult{
			Appraisers: []entities.Appraiser{panelAppraiser("APP-001")},
			Source:     "master",
		}, nil)
		sender := mock_interfaces.NewMockIMailSender(ctrl)
		sender.EXPECT().Send(gomock.Any(), "pat@lender.example.com", gomock.Any(), gomock.Any()).
			Return(errors.New("smtp refused"))

		uc := NewQuoteUseCase(orders, panel, quotes, NewDispatcher(sender, 1), testLetterContext())
		_, err := uc.SendSummary(context.Background(), "ORD-2024-00042", false)
		if !errors.Is(err, ErrSummarySendFailed) {
			t.Fatalf("expected ErrSummarySendFailed, got %v", err)
		}
	})

	t.Run("sends to the client contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00042").Return(rfpSentOrder(), 2, nil)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		quotes.EXPECT().ListByOrderID(gomock.Any(), "ORD-2024-00042").Return([]entities.Quote{
			{ID: "Q-1", AppraiserID: "APP-001", AppraiserName: "A One", Fee: 3100, TurnaroundDays: 9},
		}, nil)
		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "").Return(interfaces.PanelResult{
			Appraisers: []entities.Appraiser{panelAppraiser("APP-001")},
			Source:     "master",
		}, nil)
		sender := mock_interfaces.NewMockIMailSender(ctrl)
		sender.EXPECT().Send(gomock.Any(), "pat@lender.example.com", gomock.Any(), gomock.Any()).Return(nil)

		uc := NewQuoteUseCase(orders, panel, quotes, NewDispatcher(sender, 1), testLetterContext())
		delivery, err := uc.SendSummary(context.Background(), "ORD-2024-00042", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if delivery.SentTo != "pat@lender.example.com" || delivery.QuoteCount != 1 {
			t.Fatalf("unexpected delivery: %+v", delivery)
		}
	})
}
