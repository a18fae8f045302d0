package littlesearch

// Occurrence is the number of times a keyword appears in one document.
type Occurrence struct {
	Document  DocumentID
	Frequency int
}

func NewOccurrence(doc DocumentID, freq int) Occurrence {
	return Occurrence{
		Document:  doc,
		Frequency: freq,
	}
}

// PostingList holds the occurrences of a single keyword in non-increasing
// order of frequency.
type PostingList []Occurrence

// InsertLast moves the last occurrence to its position in the frequency
// order. All elements but the last must already be ordered. The returned
// slice holds the midpoints probed by the binary search, nil when the list
// has a single element.
func (pl PostingList) InsertLast() []int {
	if len(pl) <= 1 {
		return nil
	}
	last := pl[len(pl)-1]
	target := last.Frequency

	// 降順に並んだ[0, n-2]を二分探索する
	var mids []int
	low, high := 0, len(pl)-2
	pos := -1
	for low <= high {
		mid := (low + high) / 2
		mids = append(mids, mid)
		f := pl[mid].Frequency
		if target == f {
			pos = mid
			break
		}
		if target > f {
			high = mid - 1
		} else {
			low = mid + 1
		}
	}
	if pos < 0 {
		pos = low
	}

	copy(pl[pos+1:], pl[pos:len(pl)-1])
	pl[pos] = last
	return mids
}

func (pl PostingList) Size() int {
	return len(pl)
}

// Documents returns the document IDs in list order.
func (pl PostingList) Documents() []DocumentID {
	docs := make([]DocumentID, len(pl))
	for i, o := range pl {
		docs[i] = o.Document
	}
	return docs
}

// IsOrdered reports whether frequencies are non-increasing.
func (pl PostingList) IsOrdered() bool {
	for i := 1; i < len(pl); i++ {
		if pl[i-1].Frequency < pl[i].Frequency {
			return false
		}
	}
	return true
}
