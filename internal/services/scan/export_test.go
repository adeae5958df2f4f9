package scan

var (
	PaymentsScanned  = paymentsScanned
	PaymentsDetected = paymentsDetected
)
