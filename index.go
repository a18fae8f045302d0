package littlesearch

import "sort"

// Index is an inverted index from keyword to its posting list.
type Index map[string]PostingList

// Merge folds the keyword frequencies of one document into the index.
func (idx Index) Merge(doc DocumentID, freqs map[string]int) {
	for keyword, freq := range freqs {
		if freq <= 0 {
			continue
		}
		postingList, ok := idx[keyword]
		if !ok {
			idx[keyword] = PostingList{NewOccurrence(doc, freq)}
			continue
		}
		postingList = append(postingList, NewOccurrence(doc, freq))
		postingList.InsertLast()
		idx[keyword] = postingList
	}
}

func (idx Index) PostingList(keyword string) (PostingList, bool) {
	pl, ok := idx[keyword]
	return pl, ok
}

// Keywords returns all indexed keywords in lexical order.
func (idx Index) Keywords() []string {
	keywords := make([]string, 0, len(idx))
	for k := range idx {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}
