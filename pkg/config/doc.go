/*
Package config stores the user's preferences for wdfconv.

	            +-------------+
	            | Preferences |
	            |   (Store)   |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |           |           |           |
	+-----+-----+ +---+---+ +-----+-----+ +---+---+
	|   YAML    | | JSON  | |    HCL    | | File  |
	|  Parser   | | Parser| |  Parser   | | Store |
	+-----------+ +-------+ +-----------+ +-------+

🎯 Purpose:
- Remembers the last source and destination directories
- Reads and writes them in YAML, JSON or HCL
- Picks the format from the file extension

🔄 Flow:
1. FileStore.Load reads the file (a missing file is empty preferences)
2. The registered Parser for the extension decodes it
3. Paths are normalized
4. FileStore.Save encodes with the same parser and writes atomically

🤝 Interfaces:
- Parser: Parse, Marshal, CanParse
- Store: Load, Save

📝 Formats:

	# preferences.yaml
	source_directory: /data/raw
	destination_directory: /data/txt

	# preferences.hcl
	source_directory      = "${home}/raw"
	destination_directory = "${home}/txt"

Unknown keys are rejected in YAML and JSON.

🔍 Example:

	path, err := config.DefaultPath()
	if err != nil {
		return err
	}
	store, err := config.NewFileStore(path)
	if err != nil {
		return err
	}
	prefs, err := store.Load(ctx)
*/
package config
