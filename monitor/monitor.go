// Package monitor drives one full check cycle: fetch each competitor's
// menu, run the heuristic extraction, compare against reference prices,
// and merge the results into the history store.
package monitor

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"menuwatch/config"
	"menuwatch/extractor"
	"menuwatch/fetcher"
	"menuwatch/history"
	"menuwatch/models"
	"menuwatch/notifier"
	"menuwatch/parsers"
)

// maxPagesPerSource caps pagination so a broken or malicious "next"
// cycle always terminates.
const maxPagesPerSource = 5

// ReportWriter renders the history into a human-viewable report.
type ReportWriter interface {
	Generate(h *models.History) error
}

// PricePointSink receives the per-run price points of one competitor,
// in addition to the bounded series kept in the history file.
type PricePointSink interface {
	Record(competitor string, points []models.PricePoint) error
}

// source is a competitor with its parser resolved at construction time.
type source struct {
	config.Competitor
	parser parsers.Parser
}

// Monitor runs check cycles. At most one cycle is in flight at a time;
// a trigger during a running cycle is rejected, not queued, because the
// cycle read-modify-writes the history store non-transactionally.
type Monitor struct {
	sources   []source
	extractor *extractor.Extractor
	reference models.ReferenceTable
	fetcher   fetcher.Fetcher
	store     *history.Store
	notifier  notifier.Notifier

	report ReportWriter
	points PricePointSink

	interPageDelay time.Duration
	sourcePauseMin time.Duration
	sourcePauseMax time.Duration

	running sync.Mutex
}

// New wires a monitor over the active competitors. Parser kinds are
// resolved here so a misconfigured kind fails at startup.
func New(
	competitors []config.Competitor,
	categories []models.Category,
	reference models.ReferenceTable,
	f fetcher.Fetcher,
	store *history.Store,
	n notifier.Notifier,
) (*Monitor, error) {
	var sources []source
	for _, comp := range competitors {
		if !comp.Active {
			log.Printf("Skipping %s (inactive)", comp.Name)
			continue
		}
		parser, err := parsers.ForKind(comp.ParserKind)
		if err != nil {
			return nil, fmt.Errorf("competitor %s: %w", comp.Name, err)
		}
		sources = append(sources, source{Competitor: comp, parser: parser})
	}

	return &Monitor{
		sources:        sources,
		extractor:      extractor.New(categories),
		reference:      reference,
		fetcher:        f,
		store:          store,
		notifier:       n,
		interPageDelay: 2 * time.Second,
		sourcePauseMin: 2 * time.Second,
		sourcePauseMax: 5 * time.Second,
	}, nil
}

// SetReportWriter enables report generation after each cycle.
func (m *Monitor) SetReportWriter(w ReportWriter) {
	m.report = w
}

// SetPricePointSink enables the optional database time series.
func (m *Monitor) SetPricePointSink(s PricePointSink) {
	m.points = s
}

// Run executes one full check cycle. Returns false when a cycle was
// already in flight.
func (m *Monitor) Run() bool {
	if !m.running.TryLock() {
		log.Println("Check cycle already in progress, trigger ignored")
		return false
	}
	defer m.running.Unlock()

	log.Printf("Starting check cycle for %d competitors", len(m.sources))

	hist := m.store.Load()
	refs := m.reference.Clone()

	for i, src := range m.sources {
		m.checkCompetitor(src, refs, hist)
		if i < len(m.sources)-1 {
			m.pauseBetweenSources()
		}
	}

	if err := m.store.Save(hist); err != nil {
		log.Printf("Failed to persist history: %v", err)
	}
	if m.report != nil {
		if err := m.report.Generate(hist); err != nil {
			log.Printf("Failed to generate report: %v", err)
		}
	}

	log.Println("Check cycle completed")
	return true
}

// checkCompetitor processes one source end to end. Every failure is
// recovered locally: the source keeps its previous history record and
// the cycle moves on.
func (m *Monitor) checkCompetitor(src source, refs models.ReferenceTable, hist *models.History) {
	log.Printf("[+] Checking %s", src.Name)

	opts := fetcher.Options{Mode: src.FetchMode, WaitFor: src.WaitFor}

	var all []models.Product
	promoSet := make(map[string]bool)
	var promos []string

	currentURL := src.URL
	for page := 0; page < maxPagesPerSource && currentURL != ""; page++ {
		log.Printf("   Fetching: %s", currentURL)

		content, err := src.parser.Fetch(m.fetcher, currentURL, opts)
		if err != nil {
			log.Printf("   Fetch failed for %s: %v", src.Name, err)
			break
		}
		if content == "" {
			log.Printf("   No content from %s", src.Name)
			break
		}

		products, err := src.parser.Extract(content, m.extractor)
		if err != nil {
			log.Printf("   Extraction failed for %s: %v", src.Name, err)
			break
		}
		all = append(all, products...)
		log.Printf("   Found %d products on page %d", len(products), page+1)

		if doc, err := extractor.ParseDocument(content); err == nil {
			for _, kw := range extractor.DetectPromotions(doc, config.PromotionKeywords) {
				if !promoSet[kw] {
					promoSet[kw] = true
					promos = append(promos, kw)
				}
			}
		}

		next := src.parser.NextPage(content)
		if next == "" || next == currentURL {
			break
		}
		currentURL = next
		time.Sleep(m.interPageDelay)
	}

	unique := extractor.Dedupe(all)
	log.Printf("   Total unique products: %d", len(unique))

	if src.IsReference && len(unique) > 0 {
		m.updateReferences(unique, refs)
	}

	if len(promos) > 0 {
		log.Printf("   Promotions detected: %s", strings.Join(promos, ", "))
		m.notifier.Send(fmt.Sprintf("🏷️ <b>Promociones en %s</b>: %s", src.Name, strings.Join(promos, ", ")))
	}

	if len(unique) == 0 {
		return
	}

	for _, alert := range Compare(src.Name, unique, refs) {
		log.Printf("   [Alert] %s cheaper in %s: $%.2f vs $%.2f",
			alert.Competitor, alert.Product.CategoryID, alert.CompetitorPrice, alert.ReferencePrice)
		m.notifier.Send(alert.Message())
	}

	now := time.Now()
	hist.Update(src.Name, unique, promos, now)

	if m.points != nil {
		points := make([]models.PricePoint, 0, len(unique))
		for _, p := range unique {
			points = append(points, models.PricePoint{CategoryID: p.CategoryID, Price: p.Price, CheckedAt: now})
		}
		if err := m.points.Record(src.Name, points); err != nil {
			log.Printf("   Failed to record price points for %s: %v", src.Name, err)
		}
	}
}

// updateReferences overrides the per-run reference table with the
// reference source's live prices. Only known categories are touched;
// the baseline configuration is never written back.
func (m *Monitor) updateReferences(products []models.Product, refs models.ReferenceTable) {
	log.Println("   [Ref] Updating reference prices from live data")
	for _, p := range products {
		entry, ok := refs.Entries[p.CategoryID]
		if !ok {
			continue
		}
		if entry.Price != p.Price {
			log.Printf("      %s: $%.2f -> $%.2f", p.CategoryID, entry.Price, p.Price)
			entry.Price = p.Price
			refs.Entries[p.CategoryID] = entry
		}
	}
}

// pauseBetweenSources sleeps a randomized politeness delay between
// competitor fetches.
func (m *Monitor) pauseBetweenSources() {
	if m.sourcePauseMax <= 0 {
		return
	}
	delay := m.sourcePauseMin
	if spread := m.sourcePauseMax - m.sourcePauseMin; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}
	log.Printf("   Waiting %.1fs before next competitor", delay.Seconds())
	time.Sleep(delay)
}
