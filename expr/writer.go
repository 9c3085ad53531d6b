package expr

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteTSV serializes the matrix in the format ParseTSV reads. The corner
// cell is written as "gene"; values use the shortest representation that
// parses back to the identical float64, so ParseTSV(WriteTSV(m)) reproduces
// m exactly (modulo the ignored corner cell and matrix name).
func WriteTSV(w io.Writer, m *Matrix) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	cw.UseCRLF = false

	record := make([]string, m.Cols()+1)
	record[0] = "gene"
	copy(record[1:], m.conds)
	if err := cw.Write(record); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		record[0] = m.genes[i]
		for j := 0; j < m.Cols(); j++ {
			record[j+1] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
