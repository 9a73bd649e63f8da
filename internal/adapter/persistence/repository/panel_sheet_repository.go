package repository

import (
	"context"
	"log"

	"appraisal_desk/internal/adapter/persistence/recordstore"
	"appraisal_desk/internal/domain/entities"
	"appraisal_desk/internal/usecase/interfaces"
)

var panelColumns = []string{
	"appraiser_id", "name", "email", "phone", "company",
	"states", "property_types", "certifications",
	"current_workload", "capacity", "avg_fee", "avg_turnaround_days",
	"quality_score", "active",
}

const panelSheet = "Appraiser Panel"

// PanelSheetRepository reads appraiser panels. Clients may have a dedicated
// panel spreadsheet; when it is missing, unreadable, or empty the master
// panel serves instead.
type PanelSheetRepository struct {
	store         *recordstore.Store
	masterSheetID string
	clientSheetID func(clientID string) string
}

var _ interfaces.IPanelRepository = (*PanelSheetRepository)(nil)

func NewPanelSheetRepository(store *recordstore.Store, masterSheetID string, clientSheetID func(string) string) *PanelSheetRepository {
	if clientSheetID == nil {
		clientSheetID = func(string) string { return "" }
	}
	return &PanelSheetRepository{
		store:         store,
		masterSheetID: masterSheetID,
		clientSheetID: clientSheetID,
	}
}

func (r *PanelSheetRepository) List(ctx context.Context, clientID string) (interfaces.PanelResult, error) {
	if clientID != "" {
		if sheetID := r.clientSheetID(clientID); sheetID != "" {
			rows, err := r.store.Read(ctx, r.collection(sheetID))
			if err == nil && len(rows) > 0 {
				return interfaces.PanelResult{
					Appraisers: appraisersFromRows(rows),
					Source:     "client:" + clientID,
				}, nil
			}
			if err != nil {
				log.Printf("[panel][repository] client panel read failed, using master client_id=%s err=%v", clientID, err)
			}
			return r.master(ctx, true)
		}
	}
	return r.master(ctx, false)
}

func (r *PanelSheetRepository) FindByID(ctx context.Context, appraiserID string) (entities.Appraiser, error) {
	_, row, err := r.store.FindByKey(ctx, r.collection(r.masterSheetID), "appraiser_id", appraiserID)
	if err != nil {
		return entities.Appraiser{}, err
	}
	if row == nil {
		return entities.Appraiser{}, nil
	}
	return appraiserFromRow(row), nil
}

func (r *PanelSheetRepository) master(ctx context.Context, usedFallback bool) (interfaces.PanelResult, error) {
	rows, err := r.store.Read(ctx, r.collection(r.masterSheetID))
	if err != nil {
		return interfaces.PanelResult{}, err
	}
	return interfaces.PanelResult{
		Appraisers:   appraisersFromRows(rows),
		Source:       "master",
		UsedFallback: usedFallback,
	}, nil
}

func (r *PanelSheetRepository) collection(spreadsheetID string) recordstore.Collection {
	return recordstore.Collection{
		SpreadsheetID: spreadsheetID,
		Sheet:         panelSheet,
		Columns:       panelColumns,
	}
}

func appraisersFromRows(rows []recordstore.Row) []entities.Appraiser {
	out := make([]entities.Appraiser, len(rows))
	for i, row := range rows {
		out[i] = appraiserFromRow(row)
	}
	return out
}

func appraiserFromRow(row recordstore.Row) entities.Appraiser {
	return entities.Appraiser{
		ID:                row["appraiser_id"],
		Name:              row["name"],
		Email:             row["email"],
		Phone:             row["phone"],
		Company:           row["company"],
		States:            row["states"],
		PropertyTypes:     row["property_types"],
		Certifications:    row["certifications"],
		CurrentWorkload:   row["current_workload"],
		Capacity:          row["capacity"],
		AvgFee:            row["avg_fee"],
		AvgTurnaroundDays: row["avg_turnaround_days"],
		QualityScore:      row["quality_score"],
		Active:            row["active"],
	}
}
