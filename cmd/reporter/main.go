package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/twigalabs/rangertrack/internal/pkg/config"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/internal/pkg/ranger"
	"github.com/twigalabs/rangertrack/services/tracking/services"
)

// unitReport is one row of the fleet report
type unitReport struct {
	SourceID      string
	Name          string
	Provider      string
	Fixes         int
	FixesPerDay   float64
	MeanVoltage   *float64
	BatteryStatus models.BatteryStatus
	LastFixAt     *time.Time
}

func main() {
	var (
		provider  = flag.String("provider", "", "only report units from this provider")
		days      = flag.Int("days", 30, "report window in days")
		sendEmail = flag.Bool("email", false, "email the report using the configured SMTP settings")
	)
	flag.Parse()

	configs := config.InitConfig("")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	if *provider == "" {
		*provider = configs.Tracking.DefaultProvider
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client := ranger.NewClient(configs.Ranger, zapLogger)

	reports, err := buildReports(ctx, client, *provider, *days)
	if err != nil {
		zapLogger.Fatal("Failed to build fleet report", logger.Err(err))
	}

	body := renderReport(reports, *provider, *days)
	fmt.Print(body)

	if *sendEmail {
		if configs.Report.To == "" {
			zapLogger.Fatal("No report recipients configured")
		}
		if err := emailReport(configs.Report, body, *days); err != nil {
			zapLogger.Fatal("Failed to email report", logger.Err(err))
		}
		zapLogger.Info("Fleet report sent", logger.String("to", configs.Report.To))
	}
}

func buildReports(ctx context.Context, client *ranger.Client, provider string, days int) ([]unitReport, error) {
	sources, err := client.GetSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sources: %w", err)
	}

	until := time.Now().UTC()
	since := until.AddDate(0, 0, -days)

	var reports []unitReport
	for _, source := range sources {
		if source.Provider == "dummy" || !source.IsActive {
			continue
		}
		if provider != "" && source.Provider != provider {
			continue
		}

		observations, err := client.GetObservations(ctx, []string{source.ID}, since, until)
		if err != nil {
			logger.Warn("Skipping unit, observation fetch failed",
				logger.String("source_id", source.ID),
				logger.Err(err))
			continue
		}

		reports = append(reports, summarize(source, observations, days))
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].SourceID < reports[j].SourceID })
	return reports, nil
}

func summarize(source models.Source, observations []models.Observation, days int) unitReport {
	report := unitReport{
		SourceID: source.ID,
		Name:     source.Name,
		Provider: source.Provider,
		Fixes:    len(observations),
	}
	if days > 0 {
		report.FixesPerDay = float64(len(observations)) / float64(days)
	}

	var (
		voltageSum    float64
		voltageCount  int
		latestVoltage *float64
		latestFix     time.Time
		latestReading time.Time
	)
	for i := range observations {
		obs := observations[i]
		if report.LastFixAt == nil || obs.RecordedAt.After(latestFix) {
			latestFix = obs.RecordedAt
			report.LastFixAt = &latestFix
		}
		if voltage, ok := services.BatteryVoltage(obs.Additional); ok {
			voltageSum += voltage
			voltageCount++
			if latestVoltage == nil || obs.RecordedAt.After(latestReading) {
				v := voltage
				latestVoltage = &v
				latestReading = obs.RecordedAt
			}
		}
	}
	if voltageCount > 0 {
		mean := voltageSum / float64(voltageCount)
		report.MeanVoltage = &mean
	}
	report.BatteryStatus = services.BatteryStatusFor(latestVoltage)
	return report
}

func renderReport(reports []unitReport, provider string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fleet report, last %d days", days)
	if provider != "" {
		fmt.Fprintf(&b, ", provider %s", provider)
	}
	fmt.Fprintf(&b, "\nGenerated %s\n\n", time.Now().UTC().Format(time.RFC3339))

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "UNIT\tNAME\tFIXES\tFIXES/DAY\tMEAN V\tBATTERY\tLAST FIX")
	for _, r := range reports {
		meanV := "-"
		if r.MeanVoltage != nil {
			meanV = fmt.Sprintf("%.2f", *r.MeanVoltage)
		}
		lastFix := "-"
		if r.LastFixAt != nil {
			lastFix = r.LastFixAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%s\t%s\t%s\n",
			r.SourceID, r.Name, r.Fixes, r.FixesPerDay, meanV, r.BatteryStatus, lastFix)
	}
	w.Flush()

	critical := 0
	for _, r := range reports {
		if r.BatteryStatus == models.BatteryCritical {
			critical++
		}
	}
	fmt.Fprintf(&b, "\n%d units, %d with critical battery\n", len(reports), critical)
	return b.String()
}

func emailReport(cfg models.ReportConfig, body string, days int) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.From)
	msg.SetHeader("To", strings.Split(cfg.To, ",")...)
	msg.SetHeader("Subject", fmt.Sprintf("Fleet report, last %d days", days))
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}
