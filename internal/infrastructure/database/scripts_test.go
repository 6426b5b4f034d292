package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScripts(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scripts.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write scripts: %v", err)
	}
	return path
}

const validScripts = `{
  "queries": {
    "unpaidBills": ["SELECT bill_no, customer_code, contract_no, amount, name, phone, email", "FROM subscriber_bill WHERE paid = false"],
    "deletedBills": ["SELECT bill_no, customer_code, contract_no, amount, name, phone, email FROM subscriber_bill WHERE deleted = true"],
    "currentPeriod": ["SELECT name FROM billing_period ORDER BY period_end DESC LIMIT 1"],
    "minUnpaidDate": ["SELECT MIN(bill_date) FROM subscriber_bill WHERE paid = false"],
    "settledBills": ["SELECT bill_no FROM subscriber_bill WHERE customer_code = $1"]
  }
}`

func TestLoadScripts(t *testing.T) {
	t.Run("joins lines with spaces", func(t *testing.T) {
		set, err := LoadScripts(writeScripts(t, validScripts))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		q, err := set.Query(ScriptUnpaidBills)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		want := "SELECT bill_no, customer_code, contract_no, amount, name, phone, email FROM subscriber_bill WHERE paid = false"
		if q != want {
			t.Fatalf("unexpected query:\nwant %q\ngot  %q", want, q)
		}
	})

	t.Run("missing key fails", func(t *testing.T) {
		body := strings.Replace(validScripts, `"settledBills"`, `"somethingElse"`, 1)
		_, err := LoadScripts(writeScripts(t, body))
		if err == nil || !strings.Contains(err.Error(), "settledBills") {
			t.Fatalf("expected missing-query error, got %v", err)
		}
	})

	t.Run("empty query fails", func(t *testing.T) {
		body := strings.Replace(validScripts,
			`["SELECT MIN(bill_date) FROM subscriber_bill WHERE paid = false"]`, `["  "]`, 1)
		if _, err := LoadScripts(writeScripts(t, body)); err == nil {
			t.Fatalf("expected empty-query error")
		}
	})

	t.Run("unknown key lookup fails", func(t *testing.T) {
		set, err := LoadScripts(writeScripts(t, validScripts))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if _, err := set.Query("nope"); err == nil {
			t.Fatalf("expected unknown-query error")
		}
	})
}
