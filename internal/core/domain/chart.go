package domain

// ChartMapping holds the account codes the generators post to.
type ChartMapping struct {
	AccountsReceivable string
	Revenue            string
	LaborExpense       string
	CostOfGoodsSold    string
	EquipmentExpense   string
	Inventory          string
}

// DefaultChartMapping returns the codes of the default field-service chart of accounts.
func DefaultChartMapping() ChartMapping {
	return ChartMapping{
		AccountsReceivable: "1100",
		Revenue:            "4000",
		LaborExpense:       "5100",
		CostOfGoodsSold:    "5000",
		EquipmentExpense:   "5200",
		Inventory:          "1200",
	}
}
