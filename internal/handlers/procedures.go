package handlers

import "strings"

// RPCPrefix is the path every remote procedure is served under
const RPCPrefix = "/rpc/"

// ServiceFinanceControl prefixes the customer-facing procedures
const ServiceFinanceControl = "FinanceControl/"

const (
	ProcedureRegisterUser       = "FinanceControl/RegisterUser"
	ProcedureCreateBankAccount  = "FinanceControl/CreateBankAccount"
	ProcedureExecuteTransaction = "FinanceControl/ExecuteTransaction"
	ProcedureGetBankAccount     = "FinanceControl/GetBankAccount"
	ProcedureListTransactions   = "FinanceControl/ListTransactions"
	ProcedureGetRequestCount    = "Admin/GetRequestCount"
	ProcedureReconcileAccount   = "Admin/ReconcileAccount"
)

// Procedures lists every procedure the server answers
var Procedures = []string{
	ProcedureRegisterUser,
	ProcedureCreateBankAccount,
	ProcedureExecuteTransaction,
	ProcedureGetBankAccount,
	ProcedureListTransactions,
	ProcedureGetRequestCount,
	ProcedureReconcileAccount,
}

// ProcedurePath returns the URL path of a procedure
func ProcedurePath(procedure string) string {
	return RPCPrefix + procedure
}

// ProcedureFromPath extracts the procedure name from a request path. ok is
// false for paths outside the RPC prefix.
func ProcedureFromPath(path string) (procedure string, ok bool) {
	if !strings.HasPrefix(path, RPCPrefix) {
		return "", false
	}
	procedure = strings.TrimPrefix(path, RPCPrefix)
	if procedure == "" {
		return "", false
	}
	return procedure, true
}

// IsKnownProcedure reports whether the server answers procedure
func IsKnownProcedure(procedure string) bool {
	for _, known := range Procedures {
		if known == procedure {
			return true
		}
	}
	return false
}

// IsCountedProcedure reports whether calls to procedure show up in
// GetRequestCount. Only customer-facing procedures are counted.
func IsCountedProcedure(procedure string) bool {
	return strings.HasPrefix(procedure, ServiceFinanceControl) && IsKnownProcedure(procedure)
}
