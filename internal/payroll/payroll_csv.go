package payroll

import (
	"fmt"
	"io"
)

// csvHeader is the export wire format consumed by operators. It is frozen:
// one header row, comma-separated values, amounts with two decimals, and no
// quoting of embedded commas (a known limitation of the format).
const csvHeader = "ID,Name,Gross Salary,Tax,Net Salary"

// WriteCSV writes the payroll report in the operator export format.
func WriteCSV(w io.Writer, lines []PayrollLine) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}
	for _, l := range lines {
		_, err := fmt.Fprintf(w, "%d,%s,%.2f,%.2f,%.2f\n",
			l.EmployeeID, l.Name, l.GrossPay, l.Tax, l.NetPay)
		if err != nil {
			return err
		}
	}
	return nil
}
