package output

import (
	"bytes"
	"encoding/csv"

	"github.com/buelldocs/docgen/internal/domain"
	"github.com/buelldocs/docgen/pkg/dateutil"
)

// CSVFormatter exports the computed tables (one row per pay period or
// transaction) for spreadsheet use.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) FormatPaystubs(doc *PaystubDocument) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"CheckNumber", "PayDate", "PeriodStart", "PeriodEnd", "GrossPay", "FederalTax", "StateTax", "SocialSecurity", "Medicare", "TotalDeductions", "NetPay", "YTDGross", "YTDNet"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, entry := range doc.Entries {
		p := entry.Period
		row := []string{
			intToString(doc.CheckNumber(i)),
			dateutil.FormatDate(p.PayDate),
			dateutil.FormatDate(p.PeriodStart),
			dateutil.FormatDate(p.PeriodEnd),
			p.GrossPay.StringFixed(2),
			p.Taxes.Federal.StringFixed(2),
			p.Taxes.State.StringFixed(2),
			p.Taxes.SocialSecurity.StringFixed(2),
			p.Taxes.Medicare.StringFixed(2),
			p.TotalDeductions.StringFixed(2),
			p.NetPay.StringFixed(2),
			entry.YTD.GrossPay.StringFixed(2),
			entry.YTD.NetPay.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (c CSVFormatter) FormatStatement(doc *StatementDocument) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Date", "Description", "Category", "Kind", "Amount", "RunningBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, tx := range doc.Summary.Transactions {
		amount := tx.Amount
		if tx.Kind == domain.Withdrawal {
			amount = amount.Neg()
		}
		row := []string{
			dateutil.FormatDate(tx.Date),
			tx.Description,
			tx.Category,
			string(tx.Kind),
			amount.StringFixed(2),
			tx.RunningBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
