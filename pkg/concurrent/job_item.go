package concurrent

// SaveStreetJobItem satu h3 cell street index. Val street-street di cell tsb yang sudah di encode tapi belum di compress.
type SaveStreetJobItem struct {
	KeyStr string
	Val    []byte
}

type JobI interface {
	SaveStreetJobItem
}

type JobFunc[T JobI, G any] func(job T) G
