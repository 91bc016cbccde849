package engine

import (
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/outfitlab/ensemble/internal/catalog"
)

// maxAttempts bounds the assembly loop per request. Exhausting it yields a
// shorter result list, never an error.
const maxAttempts = 100

// Recommender is the matching-and-ranking engine. It holds a catalog
// snapshot and the compatibility index built over it; both are read-only
// after construction, so a single Recommender serves concurrent requests.
type Recommender struct {
	catalog *catalog.Catalog
	index   *Index

	// The selection rand source is process-wide and guarded; no determinism
	// is promised across calls.
	rngMu sync.Mutex
	rng   *rand.Rand

	recordAttempts func(n int)
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithRandSource injects the random source used for top-k selection, so
// tests can pin outcomes.
func WithRandSource(src rand.Source) Option {
	return func(r *Recommender) {
		r.rng = rand.New(src)
	}
}

// WithAttemptRecorder registers a callback invoked with the number of
// assembly attempts each Recommend call consumed, so callers can track
// generation cost without the engine depending on their metrics.
func WithAttemptRecorder(fn func(n int)) Option {
	return func(r *Recommender) {
		r.recordAttempts = fn
	}
}

// NewRecommender builds the engine for a catalog snapshot, precomputing the
// pairwise compatibility index.
func NewRecommender(cat *catalog.Catalog, opts ...Option) *Recommender {
	r := &Recommender{
		catalog: cat,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}

	start := time.Now()
	r.index = BuildIndex(cat)
	slog.Info("Compatibility index built",
		"products", cat.Len(),
		"pairs", r.index.Size(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return r
}

// Index exposes the compatibility index, mainly for operational endpoints.
func (r *Recommender) Index() *Index {
	return r.index
}

// Recommend generates up to req.NumRecommendations outfits anchored on the
// request's base product, ordered best-first. It returns NotFoundError when
// the base product id does not resolve; any other shortage of candidates
// degrades to a shorter result list.
func (r *Recommender) Recommend(req Request) ([]Outfit, error) {
	base := r.catalog.ByID(req.BaseProductID)
	if base == nil {
		return nil, &NotFoundError{ProductID: req.BaseProductID}
	}

	want := req.NumRecommendations
	if want <= 0 {
		want = DefaultNumRecommendations
	}

	pools := filterCandidates(r.catalog, base, req)

	outfits := make([]Outfit, 0, want)
	attempts := 0
	for len(outfits) < want && attempts < maxAttempts {
		attempts++

		outfit, err := r.assembleOutfit(base, pools)
		if err != nil {
			// Selection exhausted for a required slot; skip this attempt.
			continue
		}
		if isDuplicate(outfit, outfits) {
			continue
		}
		outfits = append(outfits, outfit)
	}
	if r.recordAttempts != nil {
		r.recordAttempts(attempts)
	}

	scorer := NewScorer(req.Occasion, req.Season, req.MaxBudget)
	for i := range outfits {
		outfits[i].MatchScore, outfits[i].Reasoning = scorer.Score(&outfits[i])
	}

	sort.SliceStable(outfits, func(i, j int) bool {
		return outfits[i].MatchScore > outfits[j].MatchScore
	})

	if len(outfits) > want {
		outfits = outfits[:want]
	}

	slog.Debug("Recommendations assembled",
		"base_product", base.ID,
		"requested", want,
		"returned", len(outfits),
		"attempts", attempts,
	)

	return outfits, nil
}

// assembleOutfit builds one candidate outfit. The base product fills its own
// slot; the remaining required slots and 1-3 accessories are selected from
// the filtered pools.
func (r *Recommender) assembleOutfit(base *catalog.Product, pools candidates) (Outfit, error) {
	pick := func(cat catalog.Category) (*catalog.Product, error) {
		if base.Category == cat {
			return base, nil
		}
		return r.selectItem(pools[cat], base)
	}

	top, err := pick(catalog.CategoryTop)
	if err != nil {
		return Outfit{}, err
	}
	bottom, err := pick(catalog.CategoryBottom)
	if err != nil {
		return Outfit{}, err
	}
	footwear, err := pick(catalog.CategoryFootwear)
	if err != nil {
		return Outfit{}, err
	}

	accessoryPool := pools[catalog.CategoryAccessory]
	numAccessories := 1 + r.randIntn(3)
	accessories := make([]*catalog.Product, 0, numAccessories)
	for i := 0; i < numAccessories; i++ {
		if len(accessoryPool) == 0 {
			break
		}
		acc, err := r.selectItem(accessoryPool, base)
		if err != nil {
			continue
		}
		if !containsID(accessories, acc.ID) {
			accessories = append(accessories, acc)
		}
	}

	// The randomized passes can all collide on duplicates; force one
	// accessory when the pool is non-empty.
	if len(accessories) == 0 && len(accessoryPool) > 0 {
		acc, err := r.selectItem(accessoryPool, base)
		if err != nil {
			return Outfit{}, err
		}
		accessories = append(accessories, acc)
	}

	total := top.Price + bottom.Price + footwear.Price
	for _, acc := range accessories {
		total += acc.Price
	}

	return Outfit{
		Top:         top,
		Bottom:      bottom,
		Footwear:    footwear,
		Accessories: accessories,
		TotalPrice:  total,
	}, nil
}

// selectItem picks a candidate compatible with the base product: every
// candidate other than the base is scored as compatibility plus a style
// bonus, then one of the top max(3, n/3) is chosen uniformly at random. The
// randomization trades determinism for variety across repeated calls.
func (r *Recommender) selectItem(pool []*catalog.Product, base *catalog.Product) (*catalog.Product, error) {
	if len(pool) == 0 {
		return nil, errNoCandidates
	}

	type scored struct {
		score float64
		item  *catalog.Product
	}
	ranked := make([]scored, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == base.ID {
			continue
		}
		score := r.index.Compatibility(base.ID, candidate.ID)
		if candidate.Style == base.Style {
			score += 0.2
		}
		ranked = append(ranked, scored{score: score, item: candidate})
	}

	if len(ranked) == 0 {
		return pool[r.randIntn(len(pool))], nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	topK := len(ranked) / 3
	if topK < 3 {
		topK = 3
	}
	if topK > len(ranked) {
		topK = len(ranked)
	}

	return ranked[r.randIntn(topK)].item, nil
}

func (r *Recommender) randIntn(n int) int {
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return r.rng.Intn(n)
}

// isDuplicate compares only the core (top, bottom, footwear) triple; outfits
// differing in accessories alone count as duplicates.
func isDuplicate(outfit Outfit, existing []Outfit) bool {
	for i := range existing {
		if outfit.Top.ID == existing[i].Top.ID &&
			outfit.Bottom.ID == existing[i].Bottom.ID &&
			outfit.Footwear.ID == existing[i].Footwear.ID {
			return true
		}
	}
	return false
}

func containsID(items []*catalog.Product, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}
