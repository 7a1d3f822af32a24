package server

import (
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"

	"github.com/jdiff/shamsi-calculator/internal/calculation"
	"github.com/jdiff/shamsi-calculator/internal/domain"
	"github.com/jdiff/shamsi-calculator/internal/output"
	"github.com/jdiff/shamsi-calculator/pkg/jalali"
)

type diffRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type diffResponse struct {
	domain.Difference
	Message string `json:"message"`
}

type batchRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
	Side  string `json:"side,omitempty"`
	Text  string `json:"text,omitempty"`
	Hint  string `json:"hint,omitempty"`
}

type convertResponse struct {
	Jalali    string `json:"jalali"`
	Gregorian string `json:"gregorian"`
	Weekday   string `json:"weekday"`
	MonthName string `json:"month_name"`
	Leap      bool   `json:"leap"`
	JDN       int    `json:"jdn"`
}

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleDiff measures a single pair.
func (s *Server) handleDiff(c echo.Context) error {
	var req diffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	if strings.TrimSpace(req.A) == "" || strings.TrimSpace(req.B) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "both a and b are required")
	}

	diff, err := s.engine.Difference(req.A, req.B)
	if err != nil {
		return parseErrorResponse(c, err)
	}

	m := output.MessagesFor(s.locale(c))
	return c.JSON(http.StatusOK, diffResponse{Difference: diff, Message: m.DifferenceWithNote(diff)})
}

// handleBatch processes a multi-line body, either JSON {"text": ...} or
// text/plain, and returns the report in the requested format (json by default).
func (s *Server) handleBatch(c echo.Context) error {
	text, err := batchText(c)
	if err != nil {
		return err
	}

	report, err := s.engine.ProcessText(c.Request().Context(), text)
	if errors.Is(err, calculation.ErrNoInput) {
		m := output.MessagesFor(s.locale(c))
		return c.JSON(http.StatusBadRequest, errorResponse{Error: m.EmptyInput})
	}
	if err != nil {
		return err
	}
	s.metrics.observeLines(report.Lines)

	format := c.QueryParam("format")
	if format == "" || output.NormalizeFormatName(format) == "json" {
		return c.JSON(http.StatusOK, report)
	}

	f, err := output.NewFormatter(format, s.formatOptions(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentTypeFor(f), data)
}

// handleConvert converts ?date=YYYY/MM/DD (Jalali) or ?gregorian=YYYY-MM-DD.
func (s *Server) handleConvert(c echo.Context) error {
	var (
		d   jalali.Date
		err error
	)
	switch {
	case c.QueryParam("date") != "":
		d, err = calculation.ParseDate(c.QueryParam("date"))
		if err != nil {
			return parseErrorResponse(c, err)
		}
	case c.QueryParam("gregorian") != "":
		raw := strings.TrimSpace(c.QueryParam("gregorian"))
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "invalid gregorian date, expected YYYY-MM-DD", Text: raw})
		}
		d, err = jalali.FromGregorian(t)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Text: raw})
		}
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "date or gregorian query parameter is required")
	}

	return c.JSON(http.StatusOK, convertResponse{
		Jalali:    d.String(),
		Gregorian: d.Gregorian().String(),
		Weekday:   d.Weekday().String(),
		MonthName: d.MonthName(),
		Leap:      jalali.IsLeap(d.Year()),
		JDN:       d.JDN(),
	})
}

func batchText(c echo.Context) (string, error) {
	ct, _, _ := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if ct == echo.MIMETextPlain {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return "", echo.NewHTTPError(http.StatusBadRequest, "failed to read body").SetInternal(err)
		}
		return string(body), nil
	}

	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	return req.Text, nil
}

// parseErrorResponse maps a date parse failure to 422 with its side and text.
func parseErrorResponse(c echo.Context, err error) error {
	var pe *calculation.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	resp := errorResponse{Error: pe.Error(), Side: pe.Side.String(), Text: pe.Text}
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		resp.Hint = hints[0]
	}
	return c.JSON(http.StatusUnprocessableEntity, resp)
}

func (s *Server) locale(c echo.Context) string {
	if l := c.QueryParam("locale"); l != "" {
		return l
	}
	return s.config.App.Locale
}

func (s *Server) formatOptions(c echo.Context) output.Options {
	return output.Options{
		Locale:        s.locale(c),
		ShowGregorian: s.config.Output.ShowGregorian,
		ShowSummary:   s.config.Output.ShowSummary,
	}
}

func contentTypeFor(f output.Formatter) string {
	switch f.Name() {
	case "csv":
		return "text/csv; charset=utf-8"
	case "yaml":
		return "application/yaml"
	default:
		return echo.MIMETextPlainCharsetUTF8
	}
}
