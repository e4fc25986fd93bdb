package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

const (
	ModeProduction = "production"
	EncodingJSON   = "json"

	traceIDField = "trace_id"
)

type traceIDKey struct{}
