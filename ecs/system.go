package ecs

// System defines an interface for per-tick logic over entities matching a
// component predicate. Systems run one at a time in a fixed order; destruction
// requests made during a pass go through EntityManager.QueueDestroy and are
// flushed by the scheduler once the pass has completed.
type System interface {
	// Update is called once per tick to process entities
	Update(em *EntityManager, dt float64)
}
