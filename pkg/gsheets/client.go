package gsheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const DefaultTokenPath = "token.json"

var ErrMissingSpreadsheetID = errors.New("spreadsheet id is required")

// Client wraps the Google Sheets API service for a single spreadsheet.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	limiter       *rate.Limiter
}

// NewClientFromCredentialsFile creates a Sheets client from a Service Account or OAuth Desktop JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, cfg Config) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, cfg)
}

// NewClientFromCredentialsJSON creates a Sheets client from raw credentials JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, cfg Config) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, ErrMissingSpreadsheetID
	}

	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err == nil {
		svc, svcErr := sheets.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", svcErr)
		}
		return newClient(svc, cfg), nil
	}

	// Fallback: OAuth2 installed app credentials plus a stored token
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{sheets.SpreadsheetsScope},
		Endpoint:     google.Endpoint,
	}

	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no %s found: run scripts/gsheets-auth first", tokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	svc, svcErr := sheets.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create sheets service from OAuth token: %w", svcErr)
	}
	return newClient(svc, cfg), nil
}

// NewClientFromHTTP creates a Sheets client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, cfg Config) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, ErrMissingSpreadsheetID
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return newClient(svc, cfg), nil
}

func newClient(svc *sheets.Service, cfg Config) *Client {
	c := &Client{service: svc, spreadsheetID: cfg.SpreadsheetID}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("sheets rate limiter: %w", err)
	}
	return nil
}

// Sheets lists the sheets of the spreadsheet in tab order.
func (c *Client) Sheets(ctx context.Context) ([]SheetInfo, error) {
	ss, err := c.service.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	infos := make([]SheetInfo, 0, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties == nil {
			continue
		}
		infos = append(infos, SheetInfo{ID: s.Properties.SheetId, Title: s.Properties.Title, Index: s.Properties.Index})
	}
	return infos, nil
}

// AddSheet creates a sheet and returns its id.
func (c *Client) AddSheet(ctx context.Context, title string) (int64, error) {
	resp, err := c.batchUpdate(ctx, []*sheets.Request{{
		AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: title}},
	}})
	if err != nil {
		return 0, fmt.Errorf("failed to add sheet %q: %w", title, err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil || resp.Replies[0].AddSheet.Properties == nil {
		return 0, fmt.Errorf("add sheet %q: empty reply", title)
	}
	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

// DeleteSheet removes a sheet by id.
func (c *Client) DeleteSheet(ctx context.Context, sheetID int64) error {
	_, err := c.batchUpdate(ctx, []*sheets.Request{{
		DeleteSheet: &sheets.DeleteSheetRequest{SheetId: sheetID},
	}})
	if err != nil {
		return fmt.Errorf("failed to delete sheet %d: %w", sheetID, err)
	}
	return nil
}

// ClearValues clears the contents (not formatting) of a sheet.
func (c *Client) ClearValues(ctx context.Context, sheet string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	_, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, QuoteSheet(sheet), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet %q: %w", sheet, err)
	}
	return nil
}

// UpdateValues writes raw values starting at the A1 range.
func (c *Client) UpdateValues(ctx context.Context, a1Range string, values [][]any) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, a1Range, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", a1Range, err)
	}
	return nil
}

// AppendValues appends rows after the last populated row of the table at a1Range.
func (c *Client) AppendValues(ctx context.Context, a1Range string, values [][]any) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	_, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, a1Range, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", a1Range, err)
	}
	return nil
}

// Format applies a CellFormat to every cell of rng.
func (c *Client) Format(ctx context.Context, rng GridRange, format CellFormat) error {
	cellFormat := &sheets.CellFormat{TextFormat: &sheets.TextFormat{}}
	var fields []string

	if format.Foreground != "" {
		color, err := ParseColor(format.Foreground)
		if err != nil {
			return err
		}
		cellFormat.TextFormat.ForegroundColor = color
		fields = append(fields, "textFormat.foregroundColor")
	}
	if format.FontSize > 0 {
		cellFormat.TextFormat.FontSize = format.FontSize
		fields = append(fields, "textFormat.fontSize")
	}
	if format.Background != "" {
		color, err := ParseColor(format.Background)
		if err != nil {
			return err
		}
		cellFormat.BackgroundColor = color
		fields = append(fields, "backgroundColor")
	}
	if format.Wrap {
		cellFormat.WrapStrategy = "WRAP"
		fields = append(fields, "wrapStrategy")
	}
	if len(fields) == 0 {
		return nil
	}

	_, err := c.batchUpdate(ctx, []*sheets.Request{{
		RepeatCell: &sheets.RepeatCellRequest{
			Range:  rng.toSheets(),
			Cell:   &sheets.CellData{UserEnteredFormat: cellFormat},
			Fields: "userEnteredFormat(" + strings.Join(fields, ",") + ")",
		},
	}})
	if err != nil {
		return fmt.Errorf("failed to format range: %w", err)
	}
	return nil
}

// Merge merges rng into a single cell.
func (c *Client) Merge(ctx context.Context, rng GridRange) error {
	_, err := c.batchUpdate(ctx, []*sheets.Request{{
		MergeCells: &sheets.MergeCellsRequest{Range: rng.toSheets(), MergeType: "MERGE_ALL"},
	}})
	if err != nil {
		return fmt.Errorf("failed to merge range: %w", err)
	}
	return nil
}

// SetColumnWidths sets pixel widths starting at the 0-based column index.
func (c *Client) SetColumnWidths(ctx context.Context, sheetID int64, startColumn int64, widths []int64) error {
	reqs := make([]*sheets.Request, 0, len(widths))
	for i, w := range widths {
		reqs = append(reqs, &sheets.Request{
			UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "COLUMNS",
					StartIndex: startColumn + int64(i),
					EndIndex:   startColumn + int64(i) + 1,
				},
				Properties: &sheets.DimensionProperties{PixelSize: w},
				Fields:     "pixelSize",
			},
		})
	}
	if len(reqs) == 0 {
		return nil
	}
	if _, err := c.batchUpdate(ctx, reqs); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}
	return nil
}

// SetNote attaches a note to a single cell, replacing any previous note.
func (c *Client) SetNote(ctx context.Context, rng GridRange, note string) error {
	_, err := c.batchUpdate(ctx, []*sheets.Request{{
		RepeatCell: &sheets.RepeatCellRequest{
			Range:  rng.toSheets(),
			Cell:   &sheets.CellData{Note: note},
			Fields: "note",
		},
	}})
	if err != nil {
		return fmt.Errorf("failed to set note: %w", err)
	}
	return nil
}

func (c *Client) batchUpdate(ctx context.Context, reqs []*sheets.Request) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).
		Context(ctx).Do()
}

func (r GridRange) toSheets() *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          r.SheetID,
		StartRowIndex:    r.StartRow,
		EndRowIndex:      r.EndRow,
		StartColumnIndex: r.StartColumn,
		EndColumnIndex:   r.EndColumn,
	}
}
