package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentra/hrm-backend/internal/config"
	"github.com/talentra/hrm-backend/internal/database"
	"github.com/talentra/hrm-backend/internal/logger"
	"github.com/talentra/hrm-backend/internal/model"
	"github.com/talentra/hrm-backend/internal/repository"
	"github.com/talentra/hrm-backend/internal/service"
)

var departmentNames = []string{
	"Engineering",
	"Human Resources",
	"Finance",
	"Sales",
	"Marketing",
	"Operations",
}

var sampleEmployees = []struct {
	name  string
	email string
	phone string
}{
	{"Ana Torres", "ana.torres@example.com", "+34600111222"},
	{"Luis Romero", "luis.romero@example.com", "+34600111223"},
	{"Marta Vidal", "marta.vidal@example.com", "+34600111224"},
	{"Pablo Ferrer", "pablo.ferrer@example.com", "+34600111225"},
	{"Lucia Navarro", "lucia.navarro@example.com", "+34600111226"},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	departmentRepo := repository.NewDepartmentRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)

	departmentService := service.NewDepartmentService(departmentRepo, nil)
	employeeService := service.NewEmployeeService(employeeRepo, nil)

	fmt.Println("=== Seeding Departments and Employees ===")

	departmentIDs := make([]int, 0, len(departmentNames))
	for _, name := range departmentNames {
		d := &model.Department{Name: name}
		if err := departmentService.Create(ctx, d); err != nil {
			log.Fatal().Err(err).Str("department", name).Msg("Failed to seed department")
		}
		departmentIDs = append(departmentIDs, d.ID)
		fmt.Printf("Department %q created with ID %d\n", d.Name, d.ID)
	}

	// 25 employees spread round-robin across the departments.
	created := 0
	for i := 0; i < 25; i++ {
		tpl := sampleEmployees[i%len(sampleEmployees)]
		e := &model.Employee{
			Name:         fmt.Sprintf("%s %d", tpl.name, i+1),
			Email:        strings.Replace(tpl.email, "@", fmt.Sprintf("+%d@", i+1), 1),
			Phone:        tpl.phone,
			DepartmentID: departmentIDs[i%len(departmentIDs)],
		}
		if err := employeeService.Create(ctx, e); err != nil {
			log.Fatal().Err(err).Str("employee", e.Name).Msg("Failed to seed employee")
		}
		created++
	}

	fmt.Printf("Done: %d departments, %d employees\n", len(departmentIDs), created)
}
