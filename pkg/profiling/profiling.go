package profiling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alumniconnect/portal-api/config"
	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

const (
	defaultAppName        = "portal-api"
	defaultUploadInterval = 15 * time.Second

	// reportLabel tags samples taken while an analytics report is computed
	reportLabel = "report"
)

// sampleGroup maps an O11Y_PROFILING_SAMPLE_TYPES entry to pyroscope profile types
type sampleGroup struct {
	name  string
	types []pyroscope.ProfileType
}

// sampleGroups is ordered; the default profile set follows the same order
var sampleGroups = []sampleGroup{
	{"cpu", []pyroscope.ProfileType{pyroscope.ProfileCPU}},
	{"alloc_space", []pyroscope.ProfileType{pyroscope.ProfileAllocSpace}},
	{"alloc_objects", []pyroscope.ProfileType{pyroscope.ProfileAllocObjects}},
	{"goroutines", []pyroscope.ProfileType{pyroscope.ProfileGoroutines}},
	{"mutex", []pyroscope.ProfileType{pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration}},
	{"block", []pyroscope.ProfileType{pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration}},
}

// InitProfiler starts the pyroscope agent when profiling is enabled.
// The returned stop function is always safe to call.
func InitProfiler(cfg config.ProfilingConfig, o11y config.ObservabilityConfig, environment string) (func(), error) {
	if !cfg.Enabled {
		logger.Info("Continuous profiling disabled")
		return func() {}, nil
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("profiling endpoint is required when profiling is enabled")
	}

	profileTypes, err := profileTypes(cfg.SampleTypes)
	if err != nil {
		return nil, err
	}

	uploadRate := defaultUploadInterval
	if cfg.UploadIntervalSeconds > 0 {
		uploadRate = time.Duration(cfg.UploadIntervalSeconds) * time.Second
	}

	appName := strings.TrimSpace(cfg.AppName)
	if appName == "" {
		appName = defaultAppName
	}

	tags := serviceTags(o11y, environment)
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   endpoint,
		UploadRate:      uploadRate,
		ProfileTypes:    profileTypes,
		Tags:            tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start profiler: %w", err)
	}

	logger.Info("Continuous profiling initialized",
		zap.String("application_name", appName),
		zap.String("endpoint", endpoint),
		zap.Int("profile_types", len(profileTypes)),
		zap.Any("tags", tags),
		zap.Duration("upload_rate", uploadRate),
	)

	return func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Error("Failed to stop profiler", zap.Error(stopErr))
		}
	}, nil
}

// Do runs fn with the report name attached as a profiling label, so CPU and
// allocation samples can be filtered per analytics report. Without a running
// agent the label only decorates the goroutine.
func Do(ctx context.Context, report string, fn func(context.Context)) {
	pyroscope.TagWrapper(ctx, pyroscope.Labels(reportLabel, report), fn)
}

// profileTypes resolves a comma separated list of sample groups; empty means all
func profileTypes(value string) ([]pyroscope.ProfileType, error) {
	requested := make(map[string]bool)
	for _, raw := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if !knownSampleGroup(name) {
			return nil, fmt.Errorf("unsupported O11Y_PROFILING_SAMPLE_TYPES value: %q", name)
		}
		requested[name] = true
	}

	var types []pyroscope.ProfileType
	for _, group := range sampleGroups {
		if len(requested) == 0 || requested[group.name] {
			types = append(types, group.types...)
		}
	}
	return types, nil
}

func knownSampleGroup(name string) bool {
	for _, group := range sampleGroups {
		if group.name == name {
			return true
		}
	}
	return false
}

// serviceTags labels every uploaded profile; empty values are left out
func serviceTags(o11y config.ObservabilityConfig, environment string) map[string]string {
	tags := make(map[string]string)
	for key, value := range map[string]string{
		"service_name":    o11y.ServiceName,
		"namespace":       o11y.ServiceNamespace,
		"environment":     environment,
		"service_version": o11y.ServiceVersion,
		"instance":        o11y.ServiceInstanceID,
	} {
		if value = strings.TrimSpace(value); value != "" {
			tags[key] = value
		}
	}
	return tags
}
