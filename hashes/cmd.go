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

package hashes

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/retailnext/pinbatch/digest"
)

var (
	HashCmd            = kingpin.Command("hash", "Write a name to digest mapping for every file in a folder.")
	hashCmdFolder      = HashCmd.Flag("folder", "Folder containing the files.").Short('f').Default("files").String()
	hashCmdOutput      = HashCmd.Flag("output", "Artifact name for the mapping.").Short('o').Default("file-hashes.json").String()
	hashCmdFinalOutput = HashCmd.Flag("final-output", "Also write one digest over all per-file digests to this artifact.").String()
	hashCmdConcurrent  = HashCmd.Flag("concurrent", "Maximum files in flight.").Short('c').Default("5").Int()
	hashCmdAlgorithm   = HashCmd.Flag("algorithm", "Digest algorithm. ["+digest.AlgorithmSHA256+", "+digest.AlgorithmSHA512+", or "+digest.AlgorithmBlake2b+"]").Default(digest.AlgorithmSHA256).String()
	hashCmdEncoding    = HashCmd.Flag("encoding", "Digest encoding. ["+digest.EncodingHex+" or "+digest.EncodingBase64+"]").Default(digest.EncodingHex).String()

	CIDCmd           = kingpin.Command("cid", "Write a name to IPFS CID mapping for every file in a folder.")
	cidCmdFolder     = CIDCmd.Flag("folder", "Folder containing the files.").Short('f').Default("files").String()
	cidCmdOutput     = CIDCmd.Flag("output", "Artifact name for the mapping.").Short('o').Default("file-cids.json").String()
	cidCmdConcurrent = CIDCmd.Flag("concurrent", "Maximum files in flight.").Short('c').Default("5").Int()
	cidCmdNode       = CIDCmd.Flag("node", "Ask this IPFS node API for CIDs instead of computing them locally.").String()
)
