package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/internal/display"
	"github.com/sumanthj/resumeforge/pkg/models"
)

// PDFOptions configure the PDF capture.
type PDFOptions struct {
	// ChromePath overrides browser auto-detection when set.
	ChromePath string
	// Filename is used for the captured document title.
	Filename string
	// Timeout bounds the whole capture. Zero means a 60s default.
	Timeout time.Duration
}

// ToPDF renders the resume's display projection in headless Chrome and
// prints it to an A4 PDF. The page is staged in a temp directory that is
// removed on every exit path; the capture always runs in print mode so no
// editing affordances leak into the output.
func ToPDF(ctx context.Context, resume *models.ResumeData, opts PDFOptions) ([]byte, error) {
	if resume == nil {
		return nil, &app.ExportError{Format: FormatPDF, Err: errors.New("display root not found: no resume loaded")}
	}

	title := strings.TrimSuffix(opts.Filename, ".pdf")
	html, err := display.RenderHTML(resume, display.HTMLOptions{Title: title, PrintMode: true})
	if err != nil {
		return nil, &app.ExportError{Format: FormatPDF, Err: err}
	}

	tmpDir, err := os.MkdirTemp("", "resumeforge-pdf-")
	if err != nil {
		return nil, &app.ExportError{Format: FormatPDF, Err: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &app.ExportError{Format: FormatPDF, Err: err}
	}

	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.ChromePath != "" {
		execOpts = append(execOpts, chromedp.ExecPath(opts.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, execOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("#resume-display", chromedp.ByID),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> 8.27in x 11.69in
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &app.ExportError{Format: FormatPDF, Err: err}
	}
	if len(pdfBuf) == 0 {
		return nil, &app.ExportError{Format: FormatPDF, Err: errors.New("empty document produced")}
	}
	return pdfBuf, nil
}
