package app

import (
	"context"

	"appraisal_desk/internal/adapter/persistence/recordstore"
	"appraisal_desk/internal/adapter/persistence/repository"
	"appraisal_desk/internal/config"
	"appraisal_desk/internal/infrastructure/mail"
	"appraisal_desk/internal/infrastructure/sheets"
	"appraisal_desk/internal/usecase"
)

// App wires configuration, the record store, and the lifecycle use cases.
// Shared by the HTTP server and the CLI so both run the same stack.
type App struct {
	Config     *config.Config
	Intake     usecase.IIntakeUseCase
	Matching   usecase.IMatchingUseCase
	RFP        usecase.IRFPUseCase
	Quotes     usecase.IQuoteUseCase
	Engagement usecase.IEngagementUseCase
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	values, err := sheets.NewValues(ctx, cfg.Google)
	if err != nil {
		return nil, err
	}
	store := recordstore.New(values)

	orders := repository.NewOrderSheetRepository(store, cfg.Store.OrdersSheetID)
	panel := repository.NewPanelSheetRepository(store, cfg.Store.PanelSheetID, config.ClientPanelSheetID)
	quotes := repository.NewQuoteSheetRepository(store, cfg.Store.QuotesSheetID)

	mailer := mail.NewSMTPMailer(cfg.Mail)
	dispatcher := usecase.NewDispatcher(mailer, cfg.Mail.MaxParallelSends)
	letters := usecase.LetterContext{
		CompanyName:  cfg.Company.Name,
		CompanyEmail: cfg.Company.Email,
	}

	matching := usecase.NewMatchingUseCase(orders, panel)

	return &App{
		Config:     cfg,
		Intake:     usecase.NewIntakeUseCase(orders),
		Matching:   matching,
		RFP:        usecase.NewRFPUseCase(orders, panel, matching, dispatcher, letters),
		Quotes:     usecase.NewQuoteUseCase(orders, panel, quotes, dispatcher, letters),
		Engagement: usecase.NewEngagementUseCase(orders, panel, quotes, dispatcher, letters),
	}, nil
}
