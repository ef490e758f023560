package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"paygate/internal/domain/order"
	vo "paygate/internal/domain/order/valueobjects"
	"paygate/internal/infrastructure/persistence/models"
)

// orderNoteRecord is the JSON shape notes are stored in.
type orderNoteRecord struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// OrderMapper converts between the order domain entity and its GORM model.
type OrderMapper interface {
	ToDomain(model *models.OrderModel) (*order.Order, error)
	ToModel(domain *order.Order) (*models.OrderModel, error)
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToDomain(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.OrderStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("order %d has unknown status %q", model.ID, model.Status)
	}

	var notes []order.Note
	if len(model.Notes) > 0 {
		var records []orderNoteRecord
		if err := json.Unmarshal(model.Notes, &records); err != nil {
			return nil, fmt.Errorf("order %d has unreadable notes: %w", model.ID, err)
		}
		notes = make([]order.Note, 0, len(records))
		for _, r := range records {
			notes = append(notes, order.Note{At: r.At, Text: r.Text})
		}
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("order %d has unreadable metadata: %w", model.ID, err)
		}
	}

	return order.ReconstructOrder(order.OrderReconstructParams{
		ID:            model.ID,
		Number:        model.Number,
		Amount:        vo.NewMoney(model.AmountCents, model.Currency),
		Status:        status,
		TransactionID: model.TransactionID,
		Notes:         notes,
		Metadata:      metadata,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}), nil
}

func (m *OrderMapperImpl) ToModel(domain *order.Order) (*models.OrderModel, error) {
	if domain == nil {
		return nil, nil
	}

	records := make([]orderNoteRecord, 0, len(domain.Notes()))
	for _, n := range domain.Notes() {
		records = append(records, orderNoteRecord{At: n.At, Text: n.Text})
	}
	notesJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize order notes: %w", err)
	}

	metadataJSON, err := json.Marshal(domain.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to serialize order metadata: %w", err)
	}

	return &models.OrderModel{
		ID:            domain.ID(),
		Number:        domain.Number(),
		AmountCents:   domain.Amount().AmountInCents(),
		Currency:      domain.Amount().Currency(),
		Status:        domain.Status().String(),
		TransactionID: domain.TransactionID(),
		Notes:         datatypes.JSON(notesJSON),
		Metadata:      datatypes.JSON(metadataJSON),
		Version:       domain.Version(),
		CreatedAt:     domain.CreatedAt(),
		UpdatedAt:     domain.UpdatedAt(),
	}, nil
}
