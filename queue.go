package main

import (
	"container/heap"
	"sort"
)

// ReadyQueue orders the processes waiting for the CPU.
type ReadyQueue interface {
	Push(p *Process)
	Pop() *Process
	// IDs returns the queued process ids in the order Pop would return them.
	IDs() []string
	Empty() bool
}

// newReadyQueue returns the queue policy for an algorithm: shortest next
// burst first for SJF, arrival order for everything else.
func newReadyQueue(alg Algorithm) ReadyQueue {
	if alg == SJF {
		return newPriorityQueue(nextBurstTime)
	}
	return &fifoQueue{}
}

// nextBurstTime keys a process by the remaining time of its next CPU burst.
func nextBurstTime(p *Process) int {
	if j := p.NextJob(); j != nil {
		return j.Remaining
	}
	return p.CPUBurstTime
}

type fifoQueue struct {
	procs []*Process
}

func (q *fifoQueue) Push(p *Process) {
	q.procs = append(q.procs, p)
}

func (q *fifoQueue) Pop() *Process {
	p := q.procs[0]
	q.procs[0] = nil
	q.procs = q.procs[1:]
	return p
}

func (q *fifoQueue) IDs() []string {
	ids := make([]string, len(q.procs))
	for i, p := range q.procs {
		ids[i] = p.ID
	}
	return ids
}

func (q *fifoQueue) Empty() bool { return len(q.procs) == 0 }

type queueItem struct {
	proc *Process
	key  int
	seq  uint64 // insertion order, breaks key ties
}

// queueItems implements heap.Interface. Lower key pops first.
type queueItems []*queueItem

func (qi queueItems) Len() int { return len(qi) }

func (qi queueItems) Less(i, j int) bool {
	if qi[i].key != qi[j].key {
		return qi[i].key < qi[j].key
	}
	return qi[i].seq < qi[j].seq
}

func (qi queueItems) Swap(i, j int) {
	qi[i], qi[j] = qi[j], qi[i]
}

// Push is called by heap.Push; use priorityQueue.Push instead.
func (qi *queueItems) Push(x any) {
	*qi = append(*qi, x.(*queueItem))
}

// Pop is called by heap.Pop; use priorityQueue.Pop instead.
func (qi *queueItems) Pop() any {
	old := *qi
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	*qi = old[:n-1]
	return item
}

// priorityQueue pops the process with the smallest key, taken once at push
// time. Equal keys pop in push order.
type priorityQueue struct {
	items queueItems
	key   func(*Process) int
	seq   uint64
}

func newPriorityQueue(key func(*Process) int) *priorityQueue {
	pq := &priorityQueue{key: key}
	heap.Init(&pq.items)
	return pq
}

func (pq *priorityQueue) Push(p *Process) {
	heap.Push(&pq.items, &queueItem{proc: p, key: pq.key(p), seq: pq.seq})
	pq.seq++
}

func (pq *priorityQueue) Pop() *Process {
	return heap.Pop(&pq.items).(*queueItem).proc
}

func (pq *priorityQueue) IDs() []string {
	sorted := make(queueItems, len(pq.items))
	copy(sorted, pq.items)
	sort.Slice(sorted, sorted.Less)

	ids := make([]string, len(sorted))
	for i, item := range sorted {
		ids[i] = item.proc.ID
	}
	return ids
}

func (pq *priorityQueue) Empty() bool { return pq.items.Len() == 0 }
