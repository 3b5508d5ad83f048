package consts

type Operator string

const (
	OperatorAirtel Operator = "airtel"
	OperatorJio    Operator = "jio"
	OperatorVi     Operator = "vi"
	OperatorBSNL   Operator = "bsnl"
	OperatorAll    string   = "all"
)

// Operators lists every carrier the storefront sells plans for.
var Operators = []Operator{OperatorAirtel, OperatorJio, OperatorVi, OperatorBSNL}

const (
	CategoryPrepaid  = "prepaid"
	CategoryPostpaid = "postpaid"
)

const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// TransactionIDPrefix is prepended to the epoch-millis fallback id used when
// the backend response carries no transaction id.
const TransactionIDPrefix = "TXN"

func IsValidOperator(op string) bool {
	for _, o := range Operators {
		if string(o) == op {
			return true
		}
	}
	return false
}
