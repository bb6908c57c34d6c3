package aes32

// column computes one output word of a main round. w0..w3 are the input words in ShiftRows order for that column.
func (e *Engine) column(acc, w0, w1, w2, w3 uint32) uint32 {
	acc = e.lane.EncRound(acc, w0, 0)
	acc = e.lane.EncRound(acc, w1, 1)
	acc = e.lane.EncRound(acc, w2, 2)
	acc = e.lane.EncRound(acc, w3, 3)
	return acc
}

// columnLast is column without MixColumns.
func (e *Engine) columnLast(acc, w0, w1, w2, w3 uint32) uint32 {
	acc = e.lane.EncRoundLast(acc, w0, 0)
	acc = e.lane.EncRoundLast(acc, w1, 1)
	acc = e.lane.EncRoundLast(acc, w2, 2)
	acc = e.lane.EncRoundLast(acc, w3, 3)
	return acc
}

func (e *Engine) encrypt(block Block, rk []RoundKey) Block {
	last := len(rk) - 1

	s0 := block[0] ^ rk[0][0]
	s1 := block[1] ^ rk[0][1]
	s2 := block[2] ^ rk[0][2]
	s3 := block[3] ^ rk[0][3]

	for i := 1; i < last; i++ {
		k := &rk[i]
		// all four columns read the same pre-round state
		a0 := e.column(k[0], s0, s1, s2, s3)
		a1 := e.column(k[1], s1, s2, s3, s0)
		a2 := e.column(k[2], s2, s3, s0, s1)
		a3 := e.column(k[3], s3, s0, s1, s2)
		s0, s1, s2, s3 = a0, a1, a2, a3
	}

	k := &rk[last]
	return Block{
		e.columnLast(k[0], s0, s1, s2, s3),
		e.columnLast(k[1], s1, s2, s3, s0),
		e.columnLast(k[2], s2, s3, s0, s1),
		e.columnLast(k[3], s3, s0, s1, s2),
	}
}

// Encrypt128 encrypts one block with an AES-128 schedule.
func (e *Engine) Encrypt128(block Block, ks *Schedule128) Block {
	return e.encrypt(block, ks[:])
}

// Encrypt192 encrypts one block with an AES-192 schedule.
func (e *Engine) Encrypt192(block Block, ks *Schedule192) Block {
	return e.encrypt(block, ks[:])
}

// Encrypt256 encrypts one block with an AES-256 schedule.
func (e *Engine) Encrypt256(block Block, ks *Schedule256) Block {
	return e.encrypt(block, ks[:])
}
