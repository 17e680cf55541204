package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"shapeshifter/internal/model"
	"shapeshifter/pkg/llm"
)

// DefaultTTL is how long a cached transform stays valid.
const DefaultTTL = time.Hour

// ResponseCache stores transform responses keyed by request fingerprint.
// Implemented in-memory for a single replica and on redis for shared use.
type ResponseCache interface {
	Get(ctx context.Context, key string) (*model.TransformResponse, bool, error)
	Set(ctx context.Context, key string, res *model.TransformResponse, ttl time.Duration) error
}

// Fingerprint derives the cache key from the trimmed raw input and the
// effective settings. Identical requests always map to the same key; changing
// any settings field changes it. For URL inputs the key is computed over the
// URL itself, so repeat requests for a URL share one entry for the TTL even
// if the page changes upstream.
func Fingerprint(input string, settings llm.Settings) string {
	canonical, _ := json.Marshal(settings)

	digest := xxhash.New()
	digest.WriteString(strings.TrimSpace(input))
	digest.Write([]byte{0})
	digest.Write(canonical)

	return fmt.Sprintf("transform:%016x", digest.Sum64())
}
