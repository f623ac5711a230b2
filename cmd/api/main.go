package main

import (
	"fmt"
	"net/http"

	"github.com/paydeck/payroll-backend-go/internal/config"
	appHTTP "github.com/paydeck/payroll-backend-go/internal/handler/http"
	"github.com/paydeck/payroll-backend-go/internal/pkg/database"
	"github.com/paydeck/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/paydeck/payroll-backend-go/internal/service/attendance"
	deductionService "github.com/paydeck/payroll-backend-go/internal/service/deduction"
	employeeService "github.com/paydeck/payroll-backend-go/internal/service/employee"
	payslipService "github.com/paydeck/payroll-backend-go/internal/service/payslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	deductionSvc := deductionService.NewRuleService(deductionRepo)
	payslipSvc := payslipService.NewPayslipService(payslipRepo, employeeRepo, attendanceRepo, deductionRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	deductionHandler := appHTTP.NewDeductionHandler(deductionSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		attendanceHandler,
		deductionHandler,
		payslipHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
