package forGKlibGo

// Structure returns the pattern of csr without its weights. The index arrays
// are shared with csr.
func Structure[W any](csr *CSR[W]) *CSR[struct{}] {
	return &CSR[struct{}]{Ptr: csr.Ptr, Adj: csr.Adj, Wgt: make([]struct{}, len(csr.Adj))}
}
