package usecase

import (
	"context"
	"errors"
	"testing"

	"appraisal_desk/internal/domain/entities"
	"appraisal_desk/internal/usecase/interfaces"
	mock_interfaces "appraisal_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMatchingUseCase_FindAppraisers(t *testing.T) {
	t.Run("missing criteria without order", func(t *testing.T) {
		uc := NewMatchingUseCase(nil, nil)
		_, err := uc.FindAppraisers(context.Background(), FindParams{})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Violations) != 2 {
			t.Fatalf("expected 2 violations, got %v", verr.Violations)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00001").Return(entities.Order{}, 0, nil)

		uc := NewMatchingUseCase(orders, nil)
		_, err := uc.FindAppraisers(context.Background(), FindParams{OrderID: "ORD-2024-00001"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order fields fill blank criteria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().FindByID(gomock.Any(), "ORD-2024-00001").Return(entities.Order{
			ID:            "ORD-2024-00001",
			PropertyState: "IL",
			PropertyType:  "Office",
			ClientID:      "CLIENT-001",
		}, 2, nil)

		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "CLIENT-001").Return(interfaces.PanelResult{
			Appraisers: []entities.Appraiser{panelAppraiser("APP-001")},
			Source:     "client:CLIENT-001",
		}, nil)

		uc := NewMatchingUseCase(orders, panel)
		res, err := uc.FindAppraisers(context.Background(), FindParams{OrderID: "ORD-2024-00001"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Criteria.PropertyState != "IL" || res.Criteria.PropertyType != "Office" {
			t.Fatalf("criteria not filled from order: %+v", res.Criteria)
		}
		if res.PanelSource != "client:CLIENT-001" {
			t.Fatalf("unexpected panel source %q", res.PanelSource)
		}
	})

	t.Run("empty panel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "").Return(interfaces.PanelResult{}, nil)

		uc := NewMatchingUseCase(nil, panel)
		_, err := uc.FindAppraisers(context.Background(), FindParams{
			PropertyState: "IL", PropertyType: "Office",
		})
		if !errors.Is(err, ErrEmptyPanel) {
			t.Fatalf("expected ErrEmptyPanel, got %v", err)
		}
	})

	t.Run("zero qualified is a success with a message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		inactive := panelAppraiser("APP-001")
		inactive.Active = "FALSE"

		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "").Return(interfaces.PanelResult{
			Appraisers: []entities.Appraiser{inactive},
			Source:     "master",
		}, nil)

		uc := NewMatchingUseCase(nil, panel)
		res, err := uc.FindAppraisers(context.Background(), FindParams{
			PropertyState: "IL", PropertyType: "Office",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QualifiedCount != 0 || res.TotalInPanel != 1 {
			t.Fatalf("unexpected counts: %+v", res)
		}
		if res.Message != "No qualified appraisers found for Office in IL" {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("limit caps candidates and ranks are one-based", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var appraisers []entities.Appraiser
		for _, id := range []string{"APP-001", "APP-002", "APP-003"} {
			appraisers = append(appraisers, panelAppraiser(id))
		}

		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "").Return(interfaces.PanelResult{
			Appraisers: appraisers,
			Source:     "master",
		}, nil)

		uc := NewMatchingUseCase(nil, panel)
		res, err := uc.FindAppraisers(context.Background(), FindParams{
			PropertyState: "IL", PropertyType: "Office", Limit: 2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QualifiedCount != 3 || res.ReturnedCount != 2 {
			t.Fatalf("unexpected counts: qualified=%d returned=%d", res.QualifiedCount, res.ReturnedCount)
		}
		for i, c := range res.Candidates {
			if c.Rank != i+1 {
				t.Fatalf("candidate %d has rank %d", i, c.Rank)
			}
		}
	})

	t.Run("read-only: repeated calls agree", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		panel := mock_interfaces.NewMockIPanelRepository(ctrl)
		panel.EXPECT().List(gomock.Any(), "").Return(interfaces.PanelResult{
			Appraisers: []entities.Appraiser{panelAppraiser("APP-001"), panelAppraiser("APP-002")},
			Source:     "master",
		}, nil).Times(2)

		uc := NewMatchingUseCase(nil, panel)
		p := FindParams{PropertyState: "IL", PropertyType: "Office"}

		first, err := uc.FindAppraisers(context.Background(), p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.FindAppraisers(context.Background(), p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first.Candidates) != len(second.Candidates) {
			t.Fatalf("candidate counts differ: %d vs %d", len(first.Candidates), len(second.Candidates))
		}
		for i := range first.Candidates {
			if first.Candidates[i].ID != second.Candidates[i].ID {
				t.Fatalf("candidate order differs at %d", i)
			}
		}
	})
}
