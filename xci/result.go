package xci

const (
	StatusInspected      = "inspected"
	StatusTrimmed        = "trimmed"
	StatusAlreadyTrimmed = "already trimmed"
	StatusPadded         = "padded"
	StatusAlreadyPadded  = "already padded"
	StatusDigested       = "digested"
)

// What happened during a run. Meant to be dumped as json.
type Result struct {
	Filename      string
	Target        string // The file actually operated on (a copy in copy mode)
	Mode          string
	Status        string
	CapacityGiB   int
	DataSizeGiB   float64
	PaddingOffset int64
	CartCapacity  int64
	OriginalSize  int64
	FinalSize     int64
	Digests       []DigestEntry `json:",omitempty"`
}

func newResult(facts *CartFacts, mode Mode) *Result {
	return &Result{
		Filename:      facts.Path,
		Target:        facts.Path,
		Mode:          mode.String(),
		CapacityGiB:   facts.NominalGiB,
		DataSizeGiB:   facts.DataSizeGiB(),
		PaddingOffset: facts.PaddingOffset,
		CartCapacity:  facts.CartCapacity,
		OriginalSize:  facts.ActualSize,
		FinalSize:     facts.ActualSize,
	}
}
