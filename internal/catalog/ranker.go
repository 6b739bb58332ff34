package catalog

import (
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"github.com/pgvector/pgvector-go"
)

const rankDimensions = 256

// preferenceHints widens wizard ids into words that show up in catalog
// entries, so "outdoor-focus" can match a "Nature" trail.
var preferenceHints = map[string]string{
	"relaxed":         "garden courtyard cafe gem",
	"balanced":        "landmark museum market",
	"packed":          "tour landmark market activity",
	"solo":            "hostel street food gem",
	"couple":          "sunset rooftop fine dining garden",
	"friends":         "bar tapas street food market",
	"family":          "garden museum market",
	"outdoor-focus":   "nature trail garden sunset viewpoint",
	"indoor-focus":    "museum market workshop tour",
	"avoid-crowds":    "hidden gem secret courtyard",
	"limited-walking": "courtyard museum cafe",
}

// Ranker orders catalog entries by how close their text is to a traveller's
// stated preferences. Texts are embedded with a hashed bag of words, which is
// deterministic and needs no model.
type Ranker struct {
	dimensions int
}

func NewRanker() *Ranker {
	return &Ranker{dimensions: rankDimensions}
}

// Embed returns a unit-length vector for text, or the zero vector for text
// with no words. Each word lands in one signed bucket (the hashing trick), so
// texts sharing words overlap and unrelated texts stay near orthogonal.
func (r *Ranker) Embed(text string) pgvector.Vector {
	vector := make([]float32, r.dimensions)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ",.;:!?\"'()&")
		if word == "" {
			continue
		}
		h := hashWord(word)
		sign := float32(1)
		if h&(1<<31) != 0 {
			sign = -1
		}
		vector[int(h%uint32(r.dimensions))] += sign
	}

	var magnitude float64
	for _, v := range vector {
		magnitude += float64(v) * float64(v)
	}
	if magnitude > 0 {
		norm := float32(math.Sqrt(magnitude))
		for i := range vector {
			vector[i] /= norm
		}
	}
	return pgvector.NewVector(vector)
}

// Similarity is the cosine similarity of two embeddings.
func Similarity(a, b pgvector.Vector) float64 {
	as, bs := a.Slice(), b.Slice()
	if len(as) != len(bs) {
		return 0
	}
	var dot, na, nb float64
	for i := range as {
		dot += float64(as[i]) * float64(bs[i])
		na += float64(as[i]) * float64(as[i])
		nb += float64(bs[i]) * float64(bs[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// PreferenceText joins wizard answers and expands them with hint words.
func PreferenceText(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		b.WriteString(p)
		b.WriteByte(' ')
		if hint, ok := preferenceHints[p]; ok {
			b.WriteString(hint)
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// RankPlaces sorts places by similarity to preference, then by rating.
// An empty preference keeps rating order.
func (r *Ranker) RankPlaces(places []Place, preference string) []Place {
	out := append([]Place(nil), places...)
	scores := make(map[int]float64, len(out))
	if preference != "" {
		pref := r.Embed(preference)
		for _, p := range out {
			scores[p.ID] = Similarity(pref, r.Embed(p.Name+" "+p.Type+" "+p.Tip))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := scores[out[i].ID], scores[out[j].ID]
		if si != sj {
			return si > sj
		}
		return out[i].Rating > out[j].Rating
	})
	return out
}

// RankRestaurants drops restaurants that cannot serve a dietary constraint
// and ranks the rest like RankPlaces. If no restaurant satisfies the diet
// the full list is ranked instead.
func (r *Ranker) RankRestaurants(restaurants []Restaurant, preference string, diets []string) []Restaurant {
	out := make([]Restaurant, 0, len(restaurants))
	for _, rest := range restaurants {
		ok := true
		for _, d := range diets {
			if !rest.SuitsDiet(d) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rest)
		}
	}
	if len(out) == 0 {
		out = append(out, restaurants...)
	}

	scores := make(map[int]float64, len(out))
	if preference != "" {
		pref := r.Embed(preference)
		for _, rest := range out {
			scores[rest.ID] = Similarity(pref, r.Embed(rest.Name+" "+rest.Cuisine+" "+rest.MustTry))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := scores[out[i].ID], scores[out[j].ID]
		if si != sj {
			return si > sj
		}
		return out[i].Rating > out[j].Rating
	})
	return out
}

// RankHotels orders hotels for a budget tier: cheapest first for "budget",
// most expensive first for "luxury", best rated otherwise.
func (r *Ranker) RankHotels(hotels []Hotel, budget string) []Hotel {
	out := append([]Hotel(nil), hotels...)
	switch strings.ToLower(budget) {
	case "budget":
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight < out[j].PricePerNight })
	case "luxury":
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight > out[j].PricePerNight })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
