// Copyright 2024-2026 The Adaptrie Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// Report writes a human readable table of results.
func Report(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tROUND\tKEYS\tINSERT\tPER KEY\tNODES\tARRAYS\tDEPTH\tFILL\tJSON\tDIGEST")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%v\t%v\t%s\t%s\t%d\t%.1f%%\t%s\t%016x\n",
			r.Variant,
			r.Round,
			humanize.Comma(int64(r.Distinct)),
			r.Insert.Round(time.Microsecond),
			perKey(r.Insert, r.Keys),
			humanize.Comma(int64(r.Stats.Nodes)),
			humanize.Comma(int64(r.Stats.Arrays)),
			r.Stats.MaxDepth,
			r.Stats.Fill()*100,
			humanize.IBytes(uint64(r.JSONBytes)),
			r.Digest,
		)
	}
	return tw.Flush()
}

func perKey(d time.Duration, keys int) time.Duration {
	if keys <= 0 {
		return 0
	}
	return d / time.Duration(keys)
}
