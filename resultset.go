package dorkfactory

// Dork is one generated query string tagged with its category, engine and
// the target atom it was expanded from.
type Dork struct {
	Query    string
	Category string
	Engine   EngineID
	Target   string
}

type bucketKey struct {
	Category string
	Engine   EngineID
}

// ResultSet groups generated dorks by category and engine. Bucket order
// follows the request's category and engine order, dorks within a bucket keep
// insertion order and are unique by query string. Buckets that end up empty
// after filtering are never stored.
type ResultSet struct {
	order   []bucketKey
	buckets map[bucketKey][]Dork
	seen    map[bucketKey]map[string]struct{}
}

func newResultSet() *ResultSet {
	return &ResultSet{
		buckets: map[bucketKey][]Dork{},
		seen:    map[bucketKey]map[string]struct{}{},
	}
}

// add inserts a dork into its bucket unless an equal query string is already
// present there. Reports whether the dork was inserted.
func (rs *ResultSet) add(d Dork) bool {
	key := bucketKey{Category: d.Category, Engine: d.Engine}
	if _, ok := rs.seen[key]; !ok {
		rs.seen[key] = map[string]struct{}{}
		rs.order = append(rs.order, key)
	}
	if _, dup := rs.seen[key][d.Query]; dup {
		return false
	}
	rs.seen[key][d.Query] = struct{}{}
	rs.buckets[key] = append(rs.buckets[key], d)
	return true
}

// Categories returns the category ids present in the result set, in first
// insertion order.
func (rs *ResultSet) Categories() []string {
	var out []string
	seen := map[string]struct{}{}
	for _, key := range rs.order {
		if _, ok := seen[key.Category]; ok {
			continue
		}
		seen[key.Category] = struct{}{}
		out = append(out, key.Category)
	}
	return out
}

// Engines returns the engines that have a bucket for the given category, in
// first insertion order.
func (rs *ResultSet) Engines(category string) []EngineID {
	var out []EngineID
	for _, key := range rs.order {
		if key.Category == category {
			out = append(out, key.Engine)
		}
	}
	return out
}

// Bucket returns the ordered dorks of one (category, engine) bucket, or nil
// if the bucket does not exist.
func (rs *ResultSet) Bucket(category string, engine EngineID) []Dork {
	return rs.buckets[bucketKey{Category: category, Engine: engine}]
}

// Queries returns just the query strings of one bucket.
func (rs *ResultSet) Queries(category string, engine EngineID) []string {
	dorks := rs.Bucket(category, engine)
	if len(dorks) == 0 {
		return nil
	}
	out := make([]string, 0, len(dorks))
	for _, d := range dorks {
		out = append(out, d.Query)
	}
	return out
}

// Total returns the number of dorks across all buckets.
func (rs *ResultSet) Total() int {
	total := 0
	for _, dorks := range rs.buckets {
		total += len(dorks)
	}
	return total
}

// IsEmpty reports whether the result set holds no dorks at all.
func (rs *ResultSet) IsEmpty() bool {
	return len(rs.buckets) == 0
}
