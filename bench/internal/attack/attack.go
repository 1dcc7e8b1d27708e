package attack

import (
	"crypto/tls"
	"fmt"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	TypeShorten  = "shorten"
	TypeRedirect = "redirect"
	TypeMixed    = "mixed"
)

type Config struct {
	BaseURL            string
	Slugs              []string
	Rate               int
	Duration           time.Duration
	ShortenRatio       float64
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

func Run(cfg *Config) error {
	var targeter vegeta.Targeter

	switch cfg.Type {
	case TypeShorten:
		targeter = ShortenTargeter(cfg.BaseURL, cfg.RateLimitBypass)
	case TypeRedirect:
		if len(cfg.Slugs) == 0 {
			return fmt.Errorf("redirect attack requires seeded slugs")
		}
		targeter = RedirectTargeter(cfg.BaseURL, cfg.Slugs, cfg.RateLimitBypass)
	case TypeMixed:
		if len(cfg.Slugs) == 0 {
			return fmt.Errorf("mixed attack requires seeded slugs")
		}
		targeter = MixedTargeter(cfg.BaseURL, cfg.Slugs, cfg.ShortenRatio, cfg.RateLimitBypass)
	default:
		return fmt.Errorf("unknown attack type: %s", cfg.Type)
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	attacker := vegeta.NewAttacker(opts...)

	fmt.Printf("Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	reporter := vegeta.NewTextReporter(&metrics)
	return reporter.Report(os.Stdout)
}
