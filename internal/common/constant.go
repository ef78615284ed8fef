package common

// Persisted collection keys within a user's namespace. The backing store is
// atomic per key but not transactional across keys.
const (
	KeyVehicles          = "vehicles"
	KeyServiceRecords    = "serviceRecords"
	KeyExpenses          = "expenses"
	KeyInsurancePolicies = "insurancePolicies"
	KeyDocuments         = "documents"
	KeyProfile           = "profile"
)

// EntityKeys lists the five entity collections removed by a clear-all. The
// profile key is deliberately excluded; only logout touches it.
var EntityKeys = []string{
	KeyVehicles,
	KeyServiceRecords,
	KeyExpenses,
	KeyInsurancePolicies,
	KeyDocuments,
}
