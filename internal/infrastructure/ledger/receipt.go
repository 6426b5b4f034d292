package ledger

import (
	"time"

	"billbridge/internal/domain/entities"
)

// Wire types for the settlement post. Field names and the fixed sentinel
// values (-1 ids, posted=false) follow the Ledger's receipt schema,
// including its AccountDocumetnID spelling.

type createSessionRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
	Source   string `json:"Source"`
}

type paymentCenterRequest struct {
	SessionID string `json:"sessionID"`
	UserID    string `json:"userID"`
}

type paymentInstrument struct {
	DepositToBankAccountID int64   `json:"depositToBankAccountID"`
	InstrumentTypeItemCode string  `json:"instrumentTypeItemCode"`
	BankBranchID           *int64  `json:"bankBranchID"`
	AccountNumber          *string `json:"accountNumber"`
	DocumentReference      *string `json:"documentReference"`
	DocumentDate           string  `json:"documentDate"`
	Remark                 *string `json:"remark"`
	Amount                 float64 `json:"amount"`
}

type receipt struct {
	ReceiptNumber        *string             `json:"receiptNumber"`
	Offline              bool                `json:"offline"`
	Mobile               bool                `json:"mobile"`
	NotifyCustomer       bool                `json:"notifyCustomer"`
	SettledBills         []string            `json:"settledBills"`
	AssetAccountID       int64               `json:"assetAccountID"`
	TranTicks            string              `json:"tranTicks"`
	PaymentInstruments   []paymentInstrument `json:"paymentInstruments"`
	BankDepositDocuments []any               `json:"bankDepositDocuments"`
	Customer             *string             `json:"customer"`
	CustomerID           int64               `json:"customerID"`
	BillBatchID          int64               `json:"billBatchID"`
	SummarizeTransaction bool                `json:"summarizeTransaction"`
	OfflineBills         *string             `json:"offlineBills"`
	AccountDocumentID    int64               `json:"AccountDocumetnID"`
	DocumentTypeID       int64               `json:"documentTypeID"`
	PaperRef             string              `json:"paperRef"`
	ShortDescription     string              `json:"shortDescription"`
	LongDescription      *string             `json:"longDescription"`
	Reversed             bool                `json:"reversed"`
	Scheduled            bool                `json:"scheduled"`
	Materialized         bool                `json:"materialized"`
	MaterializedOn       string              `json:"materializedOn"`
	TotalAmount          float64             `json:"totalAmount"`
	TotalInstrument      float64             `json:"totalInstrument"`
	IsFutureDate         bool                `json:"isFutureDate"`
	DocumentDate         string              `json:"documentDate"`
	Posted               bool                `json:"posted"`
}

type postRequest struct {
	SessionID string  `json:"sessionID"`
	Receipt   receipt `json:"receipt"`
}

func buildPostRequest(sessionID string, doc entities.SettlementDocument, now time.Time) postRequest {
	stamp := now.Format(instrumentDateLayout)
	return postRequest{
		SessionID: sessionID,
		Receipt: receipt{
			Offline:        true,
			SettledBills:   doc.SettledBills,
			AssetAccountID: doc.AssetAccountID,
			TranTicks:      DateToTicks(now),
			PaymentInstruments: []paymentInstrument{{
				DepositToBankAccountID: -1,
				InstrumentTypeItemCode: doc.InstrumentCode,
				DocumentDate:           stamp,
				Amount:                 doc.InstrumentAmount.Round(2).InexactFloat64(),
			}},
			BankDepositDocuments: []any{},
			CustomerID:           -1,
			BillBatchID:          -1,
			AccountDocumentID:    -1,
			DocumentTypeID:       -1,
			ShortDescription:     doc.Description,
			MaterializedOn:       stamp,
			TotalAmount:          -1.0,
			TotalInstrument:      doc.TotalInstrument.Round(2).InexactFloat64(),
			DocumentDate:         stamp,
		},
	}
}
