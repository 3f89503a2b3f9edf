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

package download

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/retailnext/pinbatch/config"
)

var (
	Cmd = kingpin.Command("download", "Rebuild the name to CID mapping from the remote pin list.")

	cmdOutput = Cmd.Flag("output", "Name of the mapping artifact.").Short('o').Default(config.DefaultDownloadedArtifact).String()
	cmdStatus = Cmd.Flag("status", "Pin status filter: all, pinned, or unpinned.").Short('s').Default(StatusPinned).String()
)
