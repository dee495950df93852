package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultRemoteBaseURL      = "http://localhost:8080"
	defaultRemoteTimeout      = 10 * time.Second
	defaultStepDelay          = 5 * time.Second
	defaultResumeDelay        = 2 * time.Second
	defaultNoticeCapacity     = 50
	defaultQRCodeSize         = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Remote configuration for the coffee service API
	Remote *RemoteConfig `json:"remote" yaml:"remote"`

	// Lifecycle configuration for automatic order progression
	Lifecycle *LifecycleConfig `json:"lifecycle" yaml:"lifecycle"`

	// Catalog configuration for the catalog cache
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Notice configuration for the user notice feed
	Notice *NoticeConfig `json:"notice" yaml:"notice"`

	// QRCode configuration for receipt QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Telemetry configuration for lifecycle metrics
	Telemetry *TelemetryConfig `json:"telemetry" yaml:"telemetry"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RemoteConfig defines how the client reaches the coffee service
type RemoteConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Upper bound for a single remote call, including reading the body
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Requests per second allowed towards the service; zero disables throttling
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`

	UserAgent string `json:"userAgent" yaml:"userAgent"`
}

// LifecycleConfig defines the automatic progression delays of an order
type LifecycleConfig struct {
	// Delay between two automatic status steps
	StepDelay time.Duration `json:"stepDelay" yaml:"stepDelay"`

	// Extra delay before progression resumes after a payment confirmation
	ResumeDelay time.Duration `json:"resumeDelay" yaml:"resumeDelay"`
}

// CatalogConfig defines catalog loading behaviour
type CatalogConfig struct {
	// Fetch payment methods from the service instead of using the built-in set
	RemotePaymentMethods bool `json:"remotePaymentMethods" yaml:"remotePaymentMethods"`
}

// NoticeConfig defines the notice feed retention
type NoticeConfig struct {
	Capacity int `json:"capacity" yaml:"capacity"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// TelemetryConfig defines OpenTelemetry metric export
type TelemetryConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	OTLPEndpoint   string        `json:"otlpEndpoint" yaml:"otlpEndpoint"`
	Insecure       bool          `json:"insecure" yaml:"insecure"`
	ExportInterval time.Duration `json:"exportInterval" yaml:"exportInterval"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: REMOTE_BASEURL -> remote.baseUrl (not remote.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills every section a config file may leave out.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Remote == nil {
		cfg.Remote = &RemoteConfig{}
	}
	if strings.TrimSpace(cfg.Remote.BaseURL) == "" {
		cfg.Remote.BaseURL = defaultRemoteBaseURL
	}
	cfg.Remote.BaseURL = strings.TrimRight(cfg.Remote.BaseURL, "/")
	if cfg.Remote.Timeout <= 0 {
		cfg.Remote.Timeout = defaultRemoteTimeout
	}
	if cfg.Remote.RateLimit > 0 && cfg.Remote.Burst <= 0 {
		cfg.Remote.Burst = 1
	}

	if cfg.Lifecycle == nil {
		cfg.Lifecycle = &LifecycleConfig{}
	}
	if cfg.Lifecycle.StepDelay <= 0 {
		cfg.Lifecycle.StepDelay = defaultStepDelay
	}
	if cfg.Lifecycle.ResumeDelay <= 0 {
		cfg.Lifecycle.ResumeDelay = defaultResumeDelay
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}

	if cfg.Notice == nil {
		cfg.Notice = &NoticeConfig{}
	}
	if cfg.Notice.Capacity <= 0 {
		cfg.Notice.Capacity = defaultNoticeCapacity
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
