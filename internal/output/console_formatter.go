package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/buelldocs/docgen/internal/domain"
)

// ConsoleFormatter renders plain-text summaries for terminal use.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) FormatPaystubs(doc *PaystubDocument) ([]byte, error) {
	buf := &bytes.Buffer{}
	req := doc.Request

	fmt.Fprintf(buf, "PAYSTUBS: %s @ %s\n", req.Employee.Name, req.Employer.Name)
	fmt.Fprintf(buf, "%s\n\n", strings.Repeat("=", 70))

	for i, entry := range doc.Entries {
		p := entry.Period
		fmt.Fprintf(buf, "Check #%d  pay date %s  period %s to %s\n",
			doc.CheckNumber(i), FormatDate(p.PayDate), FormatDate(p.PeriodStart), FormatDate(p.PeriodEnd))
		fmt.Fprintf(buf, "  %-22s %12s %14s\n", "", "Current", "YTD")
		fmt.Fprintf(buf, "  %-22s %12s %14s\n", "Gross Pay", FormatCurrency(p.GrossPay), FormatCurrency(entry.YTD.GrossPay))
		fmt.Fprintf(buf, "  %-22s %12s %14s\n", "Federal Tax", FormatCurrency(p.Taxes.Federal), FormatCurrency(entry.YTD.Taxes.Federal))
		fmt.Fprintf(buf, "  %-22s %12s %14s\n", "State Tax", FormatCurrency(p.Taxes.State), FormatCurrency(entry.YTD.Taxes.State))
		fmt.Fprintf(buf, "  %-22s %12s %14s\n", "Social Security", FormatCurrency(p.Taxes.SocialSecurity), FormatCurrency(entry.YTD.Taxes.SocialSecurity))
		fmt.Fprintf(buf, "  %-22s %12s %14s\n", "Medicare", FormatCurrency(p.Taxes.Medicare), FormatCurrency(entry.YTD.Taxes.Medicare))
		for _, d := range req.Deductions {
			label := d.Name
			if d.Pretax {
				label += " (pretax)"
			}
			fmt.Fprintf(buf, "  %-22s %12s\n", label, FormatCurrency(d.Amount))
		}
		fmt.Fprintf(buf, "  %-22s %12s %14s\n", "NET PAY", FormatCurrency(p.NetPay), FormatCurrency(entry.YTD.NetPay))
		fmt.Fprintln(buf)
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatStatement(doc *StatementDocument) ([]byte, error) {
	buf := &bytes.Buffer{}
	req := doc.Request
	sum := doc.Summary

	fmt.Fprintf(buf, "ACCOUNT STATEMENT: %s (%s)\n", req.AccountHolder.Name, req.BankName)
	fmt.Fprintf(buf, "Account %s  Period %s to %s\n",
		MaskAccountNumber(req.AccountNumber), FormatDate(req.PeriodStart), FormatDate(req.PeriodEnd))
	fmt.Fprintf(buf, "%s\n", strings.Repeat("=", 70))
	fmt.Fprintf(buf, "Opening Balance:   %s\n", FormatCurrency(sum.OpeningBalance))
	fmt.Fprintf(buf, "Total Deposits:    %s\n", FormatSignedCurrency(sum.TotalDeposits, true))
	fmt.Fprintf(buf, "Total Withdrawals: %s\n", FormatSignedCurrency(sum.TotalWithdrawals, false))
	fmt.Fprintf(buf, "Closing Balance:   %s\n\n", FormatCurrency(sum.ClosingBalance))

	fmt.Fprintf(buf, "%-12s %-34s %12s %12s\n", "Date", "Description", "Amount", "Balance")
	fmt.Fprintf(buf, "%s\n", strings.Repeat("-", 70))
	for _, tx := range sum.Transactions {
		fmt.Fprintf(buf, "%-12s %-34s %12s %12s\n",
			FormatDate(tx.Date), tx.Description,
			FormatSignedCurrency(tx.Amount, tx.Kind == domain.Deposit),
			FormatCurrency(tx.RunningBalance))
	}

	return buf.Bytes(), nil
}
