/*
Package operation implements the batch conversion of spectrum files.

	+-------------+      +-------------+      +-------------+
	|   Runner    | ---> |  Converter  | ---> |  Observer   |
	| (background)|      |  (per-file) |      |  (events)   |
	+-------------+      +------+------+      +-------------+
	                            |
	         +------------------+------------------+
	         |                  |                  |
	  +------+------+    +------+------+    +------+------+
	  | Enumerator  |    |   Decoder   |    |   Storage   |
	  |  (*.wdf)    |    | + Encoder   |    |  (atomic)   |
	  +-------------+    +-------------+    +-------------+

🎯 Purpose:
- Lists the source files of a job
- Converts them one at a time, isolating failures per file
- Streams progress and errors to an Observer
- Stops cooperatively between files when cancelled

🔄 Flow:
1. Validate the source directory
2. Create the destination directory
3. Enumerate source files (none is a start failure)
4. For each file: checkpoint, decode, encode, write, report
5. Deliver exactly one Outcome, last

⚡ Outcomes:
- Completed: every file was reached. Per-file failures only show up as errors.
- Cancelled: the run stopped at a checkpoint. Finished files stay on disk.
- FailedToStart: one of ErrInvalidSourceDirectory, ErrDestinationUnwritable,
  ErrNoSourceFilesFound. No file events are emitted.

🧵 Concurrency:
Runner starts a single goroutine per run. Every observer call for that run is
made from it, so events arrive in file order. Cancellation is the run context:
Runner.Cancel and cancelling the parent context both take effect at the next
file boundary. A decode or write in flight always finishes.

🔍 Example:

	conv, err := operation.New(operation.Options{Decoder: wdf.NewDecoder()})
	if err != nil {
		return err
	}

	recorder := operation.NewRecorder()
	runner := operation.NewRunner(conv, recorder)
	runner.Start(ctx, operation.Job{
		SourceDirectory:      "raw",
		DestinationDirectory: "txt",
	})

	outcome := runner.Wait()
*/
package operation
