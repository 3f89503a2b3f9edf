// Copyright 2026 RetailNext, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package upload

import "github.com/alecthomas/kingpin/v2"

var (
	Cmd           = kingpin.Command("upload", "")
	cmdFolder     = Cmd.Flag("folder", "Folder containing the files.").Short('f').Default("files").String()
	cmdConcurrent = Cmd.Flag("concurrent", "Maximum uploads in flight.").Short('c').Default("1").Int()
	cmdMinTime    = Cmd.Flag("min-time", "Minimum interval between upload dispatches.").Default("3s").Duration()
	cmdKnown      = Cmd.Flag("known", "Mapping of already pinned names to CIDs. Defaults to the downloaded mapping in the output directory.").String()

	FilesCmd       = Cmd.Command("files", "Upload each file in a folder as its own pin.")
	filesCmdOutput = FilesCmd.Flag("output", "Artifact name for the uploaded mapping.").Short('o').Default("uploaded-cids.json").String()

	FolderCmd       = Cmd.Command("folder", "Upload a folder as a single pin.")
	folderCmdOutput = FolderCmd.Flag("output", "Artifact name for the folder CID.").Short('o').Default("folder-cid.json").String()
	folderCmdName   = FolderCmd.Flag("name", "Pin name for the folder. Defaults to the folder's base name.").Short('n').String()

	RunCmd         = Cmd.Command("run", "Upload files on a schedule. (Foreground Daemon)")
	runCmdOutput   = RunCmd.Flag("output", "Artifact name for the uploaded mapping.").Short('o').Default("uploaded-cids.json").String()
	runCmdInterval = RunCmd.Flag("interval", "Time between upload cycles.").Default("5m").Duration()
)
