package workers

// Workers aggregates background workers and starts them as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers. Order is preserved by Run.
func NewWorkers(list ...Worker) *Workers {
	return &Workers{workers: list}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func()

func (f WorkerFunc) Run() { f() }
