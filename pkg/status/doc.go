/*
Package status manages destination storage and status formatting.

	            +-------------+
	            |   Status    |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Storage  |           | Format  |
	|  (files)  |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Creates destination directories
- Writes converted files atomically
- Formats progress lines, run summaries and errors for people

🔄 Atomic writes:
Content is written to "<path>.tmp" and renamed over the target, so a reader
sees either the previous file or the complete new one. The temp file is
removed on failure. An existing target is replaced without warning.

🤝 Interfaces:
- Storage: CreateDir, WriteFileAtomic (Manager on the local file system)
- FileFormatter: FormatProgress, FormatSummary, FormatError

🔍 Example:

	storage := status.NewManager()
	if err := storage.CreateDir(ctx, "out"); err != nil {
		return err
	}
	err := storage.WriteFileAtomic(ctx, "out/sample.txt", content)

	formatter := status.NewDefaultFileFormatter()
	fmt.Println(formatter.FormatProgress("a.wdf", 3, 10)) // ⏳ [3/10] a.wdf (30%)
*/
package status
