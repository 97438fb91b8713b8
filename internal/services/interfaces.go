package services

import (
	"time"

	"nestegg/internal/allocation"
	"nestegg/internal/fire"
	"nestegg/internal/models"
	"nestegg/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	TouchLastLogin(userID uint)
	UpdateProfile(userID uint, firstName, lastName string, birthYear *int) (*models.User, error)
}

// AssetServicer defines the contract for the asset inventory.
type AssetServicer interface {
	CreateAsset(userID uint, name string, class allocation.AssetClass, subCategory, specificAsset string, value, costBasis int64, currency, notes string) (*models.Asset, error)
	GetUserAssets(userID uint, page pagination.PageRequest, class *allocation.AssetClass) (*pagination.PageResponse[models.Asset], error)
	GetAssetByID(userID, assetID uint) (*models.Asset, error)
	UpdateAsset(userID, assetID uint, name string, value, costBasis *int64, subCategory, specificAsset, notes *string) (*models.Asset, error)
	DeleteAsset(userID, assetID uint) error
	GetInventory(userID uint) ([]allocation.Holding, error)
	ExportCSV(userID uint) ([]byte, error)
}

// TargetRow is one row of a target-allocation replacement request.
type TargetRow struct {
	Class          allocation.AssetClass `json:"class"`
	SubCategory    string                `json:"sub_category,omitempty"`
	SpecificAsset  string                `json:"specific_asset,omitempty"`
	Percent        float64               `json:"percent"`
	UseFixedAmount bool                  `json:"use_fixed_amount,omitempty"`
	FixedAmount    int64                 `json:"fixed_amount,omitempty"`
}

// AutoTargetSuggestion is the result of the equity/bond glide-path helper.
type AutoTargetSuggestion struct {
	EquityPercent float64 `json:"equity_percent"`
	BondPercent   float64 `json:"bond_percent"`
	Age           int     `json:"age"`
	RiskFreeRate  float64 `json:"risk_free_rate"`
}

// TargetServicer defines the contract for the allocation target store.
type TargetServicer interface {
	GetTargets(userID uint) (allocation.TargetSet, error)
	GetTargetRows(userID uint) ([]models.AllocationTarget, error)
	ReplaceTargets(userID uint, rows []TargetRow) error
	AutoCalculate(userID uint, riskFreeRate float64) (*AutoTargetSuggestion, error)
}

// AllocationServicer defines the contract for the allocation comparison.
type AllocationServicer interface {
	GetAllocation(userID uint) (*allocation.Result, error)
}

// DividendSummary contains trailing-twelve-month dividend metrics.
// Calendar buckets dividend income by calendar month (January first).
type DividendSummary struct {
	TotalTrailingYear int64     `json:"total_trailing_year"`
	MonthlyAverage    int64     `json:"monthly_average"`
	YieldPct          float64   `json:"yield_pct"`
	YieldOnCostPct    float64   `json:"yield_on_cost_pct"`
	Calendar          [12]int64 `json:"calendar"`
}

// DividendServicer defines the contract for dividend tracking.
type DividendServicer interface {
	CreateDividend(userID uint, assetID *uint, symbol string, amount int64, dividendType models.DividendType, paidAt time.Time, notes string) (*models.Dividend, error)
	GetUserDividends(userID uint, page pagination.PageRequest, from, to *time.Time) (*pagination.PageResponse[models.Dividend], error)
	GetDividendByID(userID, dividendID uint) (*models.Dividend, error)
	DeleteDividend(userID, dividendID uint) error
	GetSummary(userID uint) (*DividendSummary, error)
}

// ExpenseSummary aggregates one month of spending by category.
type ExpenseSummary struct {
	Year       int              `json:"year"`
	Month      time.Month       `json:"month"`
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"by_category"`
}

// ExpenseServicer defines the contract for expense tracking.
type ExpenseServicer interface {
	CreateExpense(userID uint, category, description string, amount int64, date time.Time, recurring bool) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest, from, to *time.Time, category *string) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, category, description *string, amount *int64, date *time.Time) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	GetMonthlySummary(userID uint, year int, month time.Month) (*ExpenseSummary, error)
}

// SnapshotServicer defines the contract for net-worth snapshots.
type SnapshotServicer interface {
	ComputeAndRecordSnapshots(recordedAt time.Time) (int, error)
	RecordSnapshot(userID uint, recordedAt time.Time) (*models.PortfolioSnapshot, error)
	GetSnapshots(userID uint, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.PortfolioSnapshot], error)
}

// ProjectionRequest holds FIRE projection parameters. NetWorth and
// AnnualExpenses are optional; when 0 they are derived from the user's
// asset inventory and trailing-year expenses.
type ProjectionRequest struct {
	NetWorth          int64   `json:"net_worth"`
	AnnualExpenses    int64   `json:"annual_expenses"`
	AnnualSavings     int64   `json:"annual_savings"`
	ExpectedReturnPct float64 `json:"expected_return_pct"`
	WithdrawalRatePct float64 `json:"withdrawal_rate_pct"`
	Years             int     `json:"years"`
}

// ProjectionResult is the FIRE projection output.
type ProjectionResult struct {
	Input         fire.Input       `json:"input"`
	TargetValue   int64            `json:"target_value"`
	YearsToTarget float64          `json:"years_to_target"`
	Reachable     bool             `json:"reachable"`
	Series        []fire.YearPoint `json:"series"`
}

// ProjectionServicer defines the contract for FIRE projections.
type ProjectionServicer interface {
	GetProjection(userID uint, req ProjectionRequest) (*ProjectionResult, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
