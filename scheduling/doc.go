// Package scheduling animates non-preemptive single-machine job scheduling.
//
// A policy orders the jobs by one key with a stable sort, then jobs are
// placed back to back in that order: a job starts when the previous one ends
// (or at its arrival, if later) and runs for its full duration.
//
//   - SJF: shortest duration first.
//   - EDF: earliest deadline first.
//   - Priority: lowest priority number first (1 is the most urgent).
//   - FCFS: earliest arrival first.
//
// Each job emits highlight when it is picked and schedule{Slot} once its
// interval is fixed. The run ends with done{Summary}: makespan, average wait
// and the number of jobs finishing after their deadline.
//
// Times are integer milliseconds.
package scheduling
