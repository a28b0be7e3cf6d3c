package export

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrDeclined marks an authorization the operator chose not to grant.
// Callers treat it as a silent no-op, never as a failure.
var ErrDeclined = errors.New("spreadsheet authorization declined")

const stockSheetTitle = "進貨紀錄"

// Exporter writes the two report tables to an external spreadsheet
// and returns its id. Implementations never touch ledger state.
type Exporter interface {
	Export(ctx context.Context, title string, sales, stock [][]interface{}) (string, error)
}

// SheetsExporter talks to the Google Sheets API with a consent-granted
// OAuth token.
type SheetsExporter struct {
	svc *sheets.Service
}

// NewSheetsExporter builds a client from an OAuth client credentials
// file and a previously granted token file. A missing token means the
// operator never completed the consent step: that is a decline, not an
// error.
func NewSheetsExporter(ctx context.Context, credentialsFile, tokenFile string) (*SheetsExporter, error) {
	creds, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(creds, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}

	tokenData, err := os.ReadFile(tokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDeclined
		}
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx, &token)))
	if err != nil {
		return nil, err
	}
	return &SheetsExporter{svc: svc}, nil
}

// Export creates a fresh spreadsheet, writes the sales table to the
// default sheet and the stock table to a second one.
func (e *SheetsExporter) Export(ctx context.Context, title string, sales, stock [][]interface{}) (string, error) {
	ss, err := e.svc.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return "", translateAuthError(err)
	}
	id := ss.SpreadsheetId

	_, err = e.svc.Spreadsheets.Values.Update(id, "Sheet1!A1", &sheets.ValueRange{
		Values: sales,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return "", translateAuthError(err)
	}

	_, err = e.svc.Spreadsheets.BatchUpdate(id, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: stockSheetTitle},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return "", translateAuthError(err)
	}

	_, err = e.svc.Spreadsheets.Values.Update(id, stockSheetTitle+"!A1", &sheets.ValueRange{
		Values: stock,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return "", translateAuthError(err)
	}

	return id, nil
}

// translateAuthError maps a user-declined consent, surfaced by the
// token endpoint as access_denied, onto ErrDeclined.
func translateAuthError(err error) error {
	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) && retrieve.ErrorCode == "access_denied" {
		return ErrDeclined
	}
	if strings.Contains(err.Error(), "access_denied") {
		return ErrDeclined
	}
	return err
}
