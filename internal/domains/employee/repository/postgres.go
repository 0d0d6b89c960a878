package repository

import (
	"context"
	"fmt"

	"maventoys-backend/internal/domains/employee"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) employee.EmployeeRepository {
	return &postgresRepository{pool: pool}
}

const employeeColumns = "id, first_name, last_name, hire_date, gender, birth_date, store_id, active"

func scanEmployee(row pgx.Row, entity *employee.Employee) error {
	return row.Scan(
		&entity.ID,
		&entity.FirstName,
		&entity.LastName,
		&entity.HireDate,
		&entity.Gender,
		&entity.BirthDate,
		&entity.StoreID,
		&entity.Active,
	)
}

func (r *postgresRepository) Create(ctx context.Context, entity *employee.Employee) (*employee.Employee, error) {
	const query = `
		INSERT INTO employees (first_name, last_name, hire_date, gender, birth_date, store_id, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	row := r.pool.QueryRow(ctx, query,
		entity.FirstName,
		entity.LastName,
		entity.HireDate,
		entity.Gender,
		entity.BirthDate,
		entity.StoreID,
		entity.Active,
	)

	created := &employee.Employee{}
	if err := scanEmployee(row, created); err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*employee.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	entity := &employee.Employee{}
	if err := scanEmployee(r.pool.QueryRow(ctx, query, id), entity); err != nil {
		return nil, err
	}

	return entity, nil
}

func (r *postgresRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE active = true ORDER BY id`

	return r.queryMany(ctx, query)
}

func (r *postgresRepository) Update(ctx context.Context, entity *employee.Employee) (*employee.Employee, error) {
	const query = `
		UPDATE employees
		SET first_name = $2, last_name = $3, hire_date = $4, gender = $5,
		    birth_date = $6, store_id = $7, active = $8
		WHERE id = $1
		RETURNING ` + employeeColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.FirstName,
		entity.LastName,
		entity.HireDate,
		entity.Gender,
		entity.BirthDate,
		entity.StoreID,
		entity.Active,
	)

	updated := &employee.Employee{}
	if err := scanEmployee(row, updated); err != nil {
		logger.Error("Update: database error", err)
		return nil, err
	}

	return updated, nil
}

func (r *postgresRepository) GetByStoreID(ctx context.Context, storeID int) ([]employee.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE store_id = $1 ORDER BY id`

	return r.queryMany(ctx, query, storeID)
}

func (r *postgresRepository) FindPaged(
	ctx context.Context,
	filters employee.PagedFilters,
	params pagination.Params,
) (pagination.Page[employee.Employee], error) {
	spec := pagination.NewSpec(
		pagination.Equals("id", filters.ID),
		pagination.Contains("first_name", filters.FirstName),
		pagination.Contains("last_name", filters.LastName),
	)
	where, args := spec.Where(1)

	var total int64
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM employees"+where, args...).Scan(&total)
	if err != nil {
		logger.Error("FindPaged: count error", err)
		return pagination.Page[employee.Employee]{}, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT "+employeeColumns+" FROM employees%s ORDER BY id LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit(), params.Offset())

	employees, err := r.queryMany(ctx, query, args...)
	if err != nil {
		return pagination.Page[employee.Employee]{}, err
	}

	return pagination.NewPage(employees, params, total), nil
}

func (r *postgresRepository) FindTopSellers(ctx context.Context) ([]employee.TopSellingEmployee, error) {
	const query = `
		SELECT e.id, e.first_name, e.last_name, e.store_id, COUNT(s.id) AS number_of_sales
		FROM employees e
		JOIN sales s ON s.employee_id = e.id
		GROUP BY e.id, e.first_name, e.last_name, e.store_id
		ORDER BY number_of_sales DESC
		LIMIT 5
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("FindTopSellers: database error", err)
		return nil, fmt.Errorf("failed to rank employees: %w", err)
	}
	defer rows.Close()

	var top []employee.TopSellingEmployee
	for rows.Next() {
		var row employee.TopSellingEmployee
		err := rows.Scan(&row.ID, &row.FirstName, &row.LastName, &row.StoreID, &row.NumberOfSales)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee ranking: %w", err)
		}
		top = append(top, row)
	}

	return top, rows.Err()
}

func (r *postgresRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("queryMany: database error", err)
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var entity employee.Employee
		if err := scanEmployee(rows, &entity); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, entity)
	}

	return employees, rows.Err()
}
