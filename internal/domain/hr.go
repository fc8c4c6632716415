package domain

import (
	"strconv"
	"time"
)

type Employee struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Department     string  `json:"department"`
	BaseSalary     float64 `json:"baseSalary"`
	HourlyRate     float64 `json:"hourlyRate"`
	JoinDate       string  `json:"joinDate"`
	Avatar         string  `json:"avatar"`
	Status         string  `json:"status"`
	CurrentProject string  `json:"currentProject,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeePatch is a partial update to an employee. Nil fields are ignored.
type EmployeePatch struct {
	Name           *string
	Role           *string
	Department     *string
	BaseSalary     *float64
	HourlyRate     *float64
	Status         *string
	CurrentProject *string
}

func (p EmployeePatch) Apply(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.BaseSalary != nil {
		e.BaseSalary = *p.BaseSalary
	}
	if p.HourlyRate != nil {
		e.HourlyRate = *p.HourlyRate
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.CurrentProject != nil {
		e.CurrentProject = *p.CurrentProject
	}
}

type PayrollRecord struct {
	ID            string        `json:"id"`
	EmployeeID    string        `json:"employeeId"`
	EmployeeName  string        `json:"employeeName"`
	Month         string        `json:"month"`
	Year          int           `json:"year"`
	WorkedHours   float64       `json:"workedHours"`
	OvertimeHours float64       `json:"overtimeHours"`
	BasePay       float64       `json:"basePay"`
	OvertimePay   float64       `json:"overtimePay"`
	Deductions    float64       `json:"deductions"`
	NetPay        float64       `json:"netPay"`
	Status        PayrollStatus `json:"status"`
}

// Standard payroll assumptions used when generating a period.
const (
	StandardMonthlyHours  = 160
	StandardOvertimeHours = 10
	OvertimeMultiplier    = 1.5
)

// GeneratePayrollRecord derives a draft payroll record for one employee and
// period. The id is deterministic so regenerating a period upserts instead of
// duplicating.
func GeneratePayrollRecord(e *Employee, month string, year int) PayrollRecord {
	overtimePay := StandardOvertimeHours * e.HourlyRate * OvertimeMultiplier
	return PayrollRecord{
		ID:            PrefixPayroll + "-" + e.ID + "-" + month + "-" + strconv.Itoa(year),
		EmployeeID:    e.ID,
		EmployeeName:  e.Name,
		Month:         month,
		Year:          year,
		WorkedHours:   StandardMonthlyHours,
		OvertimeHours: StandardOvertimeHours,
		BasePay:       e.BaseSalary,
		OvertimePay:   overtimePay,
		Deductions:    0,
		NetPay:        e.BaseSalary + overtimePay,
		Status:        PayrollDraft,
	}
}

type LaborDetail struct {
	Trade         string  `json:"trade"`
	Count         int     `json:"count"`
	Hours         float64 `json:"hours"`
	EstimatedRate float64 `json:"estimatedRate,omitempty"`
}

type EquipmentDetail struct {
	AssetID        string  `json:"assetId"`
	AssetName      string  `json:"assetName"`
	OperatingHours float64 `json:"operatingHours"`
	FuelConsumed   float64 `json:"fuelConsumed,omitempty"`
	HourlyRate     float64 `json:"hourlyRate,omitempty"`
}

type ConsumedMaterial struct {
	MaterialID string  `json:"materialId"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitCost   float64 `json:"unitCost,omitempty"`
}

type DailyLogStats struct {
	TasksCompleted     int `json:"tasksCompleted"`
	IncidentsReported  int `json:"incidentsReported"`
	MaterialsRequested int `json:"materialsRequested"`
}

type DailyLog struct {
	ID                string             `json:"id"`
	ProjectID         string             `json:"projectId"`
	Date              string             `json:"date"`
	WeatherStatus     string             `json:"weatherStatus,omitempty"`
	ManpowerCount     int                `json:"manpowerCount"`
	LaborDetails      []LaborDetail      `json:"laborDetails,omitempty"`
	EquipmentDetails  []EquipmentDetail  `json:"equipmentDetails,omitempty"`
	ConsumedMaterials []ConsumedMaterial `json:"consumedMaterials,omitempty"`
	Content           string             `json:"content"`
	Stats             DailyLogStats      `json:"stats"`
	CreatedBy         string             `json:"createdBy"`
	IsApproved        bool               `json:"isApproved"`
	CreatedAt         time.Time          `json:"createdAt"`
}
