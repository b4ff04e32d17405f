package provider

// Function names exposed by the validator reporting contract.
const (
	ReportMaliciousFunc = "reportMalicious"
	ReportBenignFunc    = "reportBenign"
)

// reportingABI describes the misbehaviour reporting functions of the
// validator contract.
const reportingABI = `[
	{
		"constant": false,
		"inputs": [{"name": "validator", "type": "address"}],
		"name": "reportMalicious",
		"outputs": [],
		"payable": false,
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [{"name": "validator", "type": "address"}],
		"name": "reportBenign",
		"outputs": [],
		"payable": false,
		"type": "function"
	}
]`
