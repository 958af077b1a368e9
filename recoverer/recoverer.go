package recoverer

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libshares/document"
	"github.com/sgostarter/libshares/lagrange"
	"github.com/sgostarter/libshares/result"
	"github.com/sgostarter/libshares/share"
)

const defaultCacheExpiration = 10 * time.Minute

func buildOptions(cfg *Config) (options []share.Option, err error) {
	switch cfg.Selection {
	case "", SelectionSmallest:
	case SelectionDocument:
		options = append(options, share.DocumentOrderOption())
	default:
		err = ErrUnknownSelection

		return
	}

	if cfg.SkipInvalid {
		options = append(options, share.SkipInvalidOption())
	}

	if cfg.Dedup {
		options = append(options, share.DedupOption())
	}

	return
}

// NewRecoverer returns nil when cfg is unusable. A nil storage disables persistence.
// cfg is copied before defaults are filled in.
func NewRecoverer(storage result.Storage, cfg *Config, logger l.Wrapper) Recoverer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "recovererImpl"))

	var c Config

	if cfg != nil {
		c = *cfg
	}

	cfg = &c

	options, err := buildOptions(cfg)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("selection", cfg.Selection)).Error("invalid config")

		return nil
	}

	if cfg.CacheExpiration <= 0 {
		cfg.CacheExpiration = defaultCacheExpiration
	}

	return &recovererImpl{
		logger:    logger,
		storage:   storage,
		cfg:       cfg,
		options:   options,
		recovered: cache.New(cfg.CacheExpiration, cfg.CacheExpiration*2),
	}
}

type recovererImpl struct {
	logger  l.Wrapper
	storage result.Storage
	cfg     *Config
	options []share.Option

	recovered *cache.Cache
}

type recovery struct {
	polynomial *lagrange.Polynomial
	shares     []string
}

func (impl *recovererImpl) threshold(tc *document.TestCase) int {
	if impl.cfg.KOverride > 0 {
		return impl.cfg.KOverride
	}

	return tc.Keys.K
}

func (impl *recovererImpl) cacheKey(k int, records []share.Record) string {
	payloads := make([]string, 0, len(records))
	for _, r := range records {
		payloads = append(payloads, share.BuildSharePayload(r))
	}

	return strconv.Itoa(k) + "|" + strings.Join(payloads, ",")
}

func (impl *recovererImpl) recover(k int, records []share.Record) (rc *recovery, err error) {
	key := impl.cacheKey(k, records)

	if i, ok := impl.recovered.Get(key); ok {
		rc, _ = i.(*recovery)
		if rc != nil {
			impl.logger.WithFields(l.IntField("k", k)).Debug("recovery cache hit")

			return
		}
	}

	polynomial, samples, err := share.Recover(records, k, impl.options...)
	if err != nil {
		return
	}

	rc = &recovery{
		polynomial: polynomial,
		shares:     make([]string, 0, len(samples)),
	}

	for _, s := range samples {
		rc.shares = append(rc.shares, share.BuildSharePayload(s.Record))
	}

	impl.recovered.Set(key, rc, impl.cfg.CacheExpiration)

	return
}

func (impl *recovererImpl) Recover(name string, tc *document.TestCase) (r *result.Result, polynomial *lagrange.Polynomial, err error) {
	if tc == nil {
		err = ErrNoTestCase

		return
	}

	k := impl.threshold(tc)

	logger := impl.logger.WithFields(l.StringField("name", name), l.IntField("k", k))

	rc, err := impl.recover(k, tc.Records)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("recover failed")

		return
	}

	polynomial = rc.polynomial

	r = &result.Result{
		Name:       name,
		K:          k,
		Shares:     append([]string(nil), rc.shares...),
		Secret:     lagrange.FormatCoefficient(polynomial.Constant()),
		Polynomial: polynomial.String(),
		CreateAt:   time.Now().Unix(),
	}

	if impl.storage == nil {
		return
	}

	id, err := impl.storage.Add(r)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("save result failed")

		return
	}

	r.ID = id

	logger.WithFields(l.UInt64Field("id", id)).Debug("result saved")

	return
}

// RecoverFile names the result after the base name of path.
func (impl *recovererImpl) RecoverFile(path string) (*result.Result, *lagrange.Polynomial, error) {
	tc, err := document.LoadFile(path)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("path", path)).Error("load document failed")

		return nil, nil, err
	}

	return impl.Recover(filepath.Base(path), tc)
}
