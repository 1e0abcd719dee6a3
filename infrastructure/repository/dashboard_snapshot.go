package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commerce-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-backoffice-api/internal/domain"
	"github.com/vfg2006/commerce-backoffice-api/pkg/utils"
)

const (
	dashboardSnapshotsTable = "dashboard_snapshots ds"
)

// DashboardSnapshotRepository persiste resumos de dashboard pré-calculados,
// um por escopo (loja ou "all") e dia
type DashboardSnapshotRepository interface {
	GetByScopeAndDate(scope string, date time.Time) (*domain.DashboardSnapshot, error)
	SaveOrUpdate(snapshot *domain.DashboardSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type dashboardSnapshotRepository struct {
	conn *postgres.Connection
}

func NewDashboardSnapshotRepository(conn *postgres.Connection) DashboardSnapshotRepository {
	return &dashboardSnapshotRepository{
		conn: conn,
	}
}

func (r *dashboardSnapshotRepository) GetByScopeAndDate(scope string, date time.Time) (*domain.DashboardSnapshot, error) {
	query, args, err := squirrel.
		Select("ds.id, ds.scope, ds.date, ds.summary, ds.created_at, ds.updated_at").
		From(dashboardSnapshotsTable).
		Where(squirrel.Eq{"ds.scope": scope, "ds.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *dashboardSnapshotRepository) SaveOrUpdate(snapshot *domain.DashboardSnapshot) error {
	var summaryJSON []byte
	var err error

	if snapshot.Summary != nil {
		summaryJSON, err = json.Marshal(snapshot.Summary)
		if err != nil {
			return fmt.Errorf("erro ao serializar o resumo para JSON: %w", err)
		}
	}

	if snapshot.ID == "" {
		snapshot.ID, err = utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("dashboard_snapshots").
		Columns("id", "scope", "date", "summary").
		Values(
			snapshot.ID,
			snapshot.Scope,
			snapshot.Date.Format(time.DateOnly),
			summaryJSON,
		).
		Suffix(`
			ON CONFLICT (scope, date) DO UPDATE SET
				summary = EXCLUDED.summary,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dashboardSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("dashboard_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *dashboardSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.DashboardSnapshot, error) {
	snapshot := &domain.DashboardSnapshot{}
	var summaryJSON []byte
	var dateStr string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Scope,
		&dateStr,
		&summaryJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data: %w", err)
	}
	snapshot.Date = date

	if summaryJSON != nil {
		summary := &domain.DashboardSummary{}
		if err := json.Unmarshal(summaryJSON, summary); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do resumo: %w", err)
		}
		snapshot.Summary = summary
	}

	return snapshot, nil
}
