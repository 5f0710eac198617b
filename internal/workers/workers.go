package workers

type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers; Run starts them in order.
func NewWorkers(w ...Worker) *Workers {
	return &Workers{workers: w}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
