package admin

import (
	"context"

	"github.com/BruksfildServices01/store-ratings/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
	// keeps (page-1)*limit far from overflow
	maxAuditPage = 100000
)

type AuditLogFilter struct {
	Action string
	Entity string
	Page   int
	Limit  int
}

type AuditLogReader interface {
	List(ctx context.Context, f AuditLogFilter) ([]models.AuditLog, int64, error)
}

type AuditLogPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

type ListAuditLogs struct {
	reader AuditLogReader
}

func NewListAuditLogs(reader AuditLogReader) *ListAuditLogs {
	return &ListAuditLogs{reader: reader}
}

func (uc *ListAuditLogs) Execute(ctx context.Context, f AuditLogFilter) (*AuditLogPage, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Page > maxAuditPage {
		f.Page = maxAuditPage
	}
	if f.Limit <= 0 || f.Limit > maxAuditLimit {
		f.Limit = defaultAuditLimit
	}

	logs, total, err := uc.reader.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	return &AuditLogPage{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Logs:  logs,
	}, nil
}
