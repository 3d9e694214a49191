package admin

import (
	"context"
	"math"
	"testing"

	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type fakeAuditReader struct {
	got AuditLogFilter
}

func (f *fakeAuditReader) List(_ context.Context, filter AuditLogFilter) ([]models.AuditLog, int64, error) {
	f.got = filter
	return nil, 0, nil
}

func TestListAuditLogs_Paging(t *testing.T) {
	tests := []struct {
		name      string
		in        AuditLogFilter
		wantPage  int
		wantLimit int
	}{
		{"defaults", AuditLogFilter{}, 1, 50},
		{"explicit", AuditLogFilter{Page: 3, Limit: 10}, 3, 10},
		{"negative page", AuditLogFilter{Page: -2, Limit: 10}, 1, 10},
		{"limit over max", AuditLogFilter{Page: 1, Limit: 500}, 1, 50},
		{"huge page", AuditLogFilter{Page: math.MaxInt, Limit: 200}, maxAuditPage, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakeAuditReader{}
			page, err := NewListAuditLogs(reader).Execute(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if reader.got.Page != tt.wantPage || reader.got.Limit != tt.wantLimit {
				t.Errorf("filter = %+v, want page %d limit %d", reader.got, tt.wantPage, tt.wantLimit)
			}
			if page.Logs == nil {
				t.Error("Logs is nil, want empty slice")
			}
		})
	}
}
