package forGKlibGo

import (
	"errors"
	"io"
	"os"

	GrB "github.com/intel/forGraphBLASGo/GrB"
	"github.com/intel/forGKlibGo/MatrixMarket"
	"go.uber.org/zap"
)

func ReadProblem[T GrB.Number](logger *zap.Logger, filename string, makeSymmetric, removeSelfEdges bool) (G *Graph[T], functionErr error) {
	logger.Info("Reading matrix market file", zap.String("file", filename))
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil && functionErr == nil {
			functionErr = err
		}
	}()
	return ReadGraph[T](logger, f, makeSymmetric, removeSelfEdges)
}

// ReadGraph reads a square Matrix Market matrix as the adjacency matrix of a
// graph. Symmetric storage yields an undirected graph.
func ReadGraph[T GrB.Number](logger *zap.Logger, r io.Reader, makeSymmetric, removeSelfEdges bool) (*Graph[T], error) {
	header, scanner, err := MatrixMarket.ReadHeader(r)
	if err != nil {
		return nil, err
	}
	logger.Debug("header",
		zap.Int("nrows", header.NRows),
		zap.Int("ncols", header.NCols),
		zap.Int("nvals", header.NVals),
	)
	if header.NRows != header.NCols {
		return nil, errors.New("A must be square")
	}
	C, err := MatrixMarket.Read[T](header, scanner)
	if err != nil {
		return nil, err
	}

	edges := make([]UVW[int, T], len(C.Rows))
	for i := range edges {
		edges[i] = UVW[int, T]{U: C.Rows[i], V: C.Cols[i], W: C.Vals[i]}
	}
	kind := AdjacencyDirected
	if header.Storage == MatrixMarket.Symmetric {
		kind = AdjacencyUndirected
	}
	logger.Info("sort edges", zap.Int("nedges", len(edges)), zap.Stringer("kind", kind))
	G, err := NewGraph(header.NRows, edges, kind)
	if err != nil {
		return nil, err
	}

	if removeSelfEdges {
		logger.Info("remove self edges", zap.Int("nselfedges", G.NSelfEdges))
		G.DeleteSelfEdges()
	}
	if makeSymmetric && G.Kind == AdjacencyDirected {
		logger.Info("make symmetric")
		G.MakeSymmetric()
	}
	if err = G.Check(); err != nil {
		return nil, err
	}
	logger.Info("ReadProblem done", zap.Int("n", G.N), zap.Int("nedges", G.NEdges()))
	return G, nil
}
