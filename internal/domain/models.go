package domain

import "time"

// Enumerations
const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"

	LogInfo    ActivityLogType = "info"
	LogWarning ActivityLogType = "warning"
	LogError   ActivityLogType = "error"

	LeavePaid    LeaveType = "paid"
	LeaveUnpaid  LeaveType = "unpaid"
	LeaveAnnual  LeaveType = "annual"
	LeaveMedical LeaveType = "medical"
	LeaveOther   LeaveType = "other"

	DayWorking    DayClass = "working"
	DayHoliday    DayClass = "holiday"
	DayWeeklyRest DayClass = "weekly_rest"
)

type UserRole string
type ActivityLogType string
type LeaveType string
type DayClass string

// Cell symbols used on the monthly timesheet.
const (
	SymbolWorking     = "X"
	SymbolHalfDay     = "/"
	SymbolPaidLeave   = "Ü"
	SymbolUnpaidLeave = "ÜS"
	SymbolAnnualLeave = "Yİ"
	SymbolMedical     = "R"
	SymbolHoliday     = "BT"
	SymbolWeeklyRest  = "HT"
	SymbolOvertime    = "M"
)

type Region struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type User struct {
	ID           int64
	Name         string
	Email        string
	Region       string
	RegionID     *int64
	Role         UserRole
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type ActivityLog struct {
	ID       int64
	Title    string
	Message  string
	Actor    string
	Type     ActivityLogType
	LoggedAt time.Time
}

// Employee is one roster entry, identified by national ID.
// HireDate is nil when the hire date was never recorded.
type Employee struct {
	NationalID string
	Name       string
	RegionID   int64
	HireDate   *time.Time
}

// TemplateEntry is one painted day of a region's monthly calendar.
type TemplateEntry struct {
	Label      string
	Holiday    bool
	WeeklyRest bool
}

// CalendarTemplate holds the painted calendar of one (region, month).
// Days is keyed by day of month; unpainted days are simply absent.
type CalendarTemplate struct {
	RegionID int64
	Month    time.Time
	Days     map[int]TemplateEntry
}

type LeaveRecord struct {
	ID         int64
	EmployeeID string
	Type       LeaveType
	Start      time.Time
	End        time.Time
	StatusText string
	ApprovedAt *time.Time
}

// AttendanceCell is one (employee, day) cell. Color is always derived
// from Symbol via ColorForSymbol, never stored independently.
type AttendanceCell struct {
	Symbol string
	Color  CellColor
}

// MergedSpan collapses the days before an employee's hire date into one
// display block. It always starts at day 1.
type MergedSpan struct {
	Days  int
	Label string
	Color CellColor
}

type AttendanceRow struct {
	Employee      Employee
	Cells         []AttendanceCell
	PreHire       *MergedSpan
	DailyWage     *float64
	RoadAllowance *float64
	DrivingPay    *float64
}

type Grid struct {
	Region      Region
	Month       time.Time
	DaysInMonth int
	Rows        []AttendanceRow
	Warnings    []string
}

// Override is one persisted manual correction for a cell, plus the
// optional row-level money fields stored against day 1.
type Override struct {
	EmployeeID    string
	Day           int
	Symbol        string
	DailyWage     *float64
	RoadAllowance *float64
	DrivingPay    *float64
}

type Settings struct {
	CompanyName    string
	CompanyAddress string
	CurrencyCode   string
	UpdatedAt      time.Time
}
