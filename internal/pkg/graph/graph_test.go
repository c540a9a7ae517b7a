package graph

import (
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/CMU_Sidecar/lexicon-tools/g2p-lexicon/internal/pkg/lexicon"
)

type call struct {
	cypher string
	params map[string]interface{}
}

type fakeTx struct {
	calls  []call
	failOn int
}

func (f *fakeTx) Run(cypher string, params map[string]interface{}) (neo4j.Result, error) {
	f.calls = append(f.calls, call{cypher, params})
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return nil, errors.New("boom")
	}
	return nil, nil
}

func (f *fakeTx) Commit() error {
	return nil
}

func (f *fakeTx) Rollback() error {
	return nil
}

func (f *fakeTx) Close() error {
	return nil
}

type fakeSession struct {
	tx  *fakeTx
	txs int
}

func (s *fakeSession) WriteTransaction(work neo4j.TransactionWork, configurers ...func(*neo4j.TransactionConfig)) (interface{}, error) {
	s.txs++
	return work(s.tx)
}

func TestMemoQuery(t *testing.T) {
	q := MemoQuery()
	assert.Equal(t, "MERGE (w:Word {word: $word}) SET w.phones = $phones;", q(0))
	assert.Equal(t,
		"MERGE (w:Word {word: $word}) SET w.phones = $phones"+
			" MERGE (p0:Phone {phone: $p0}) MERGE (w)-[:PHONE {pos: 0}]->(p0)"+
			" MERGE (p1:Phone {phone: $p1}) MERGE (w)-[:PHONE {pos: 1}]->(p1);",
		q(2))
	assert.Equal(t, q(2), q(2))
}

func TestParams(t *testing.T) {
	pmap, n := Params(lexicon.Entry{Word: "ата", Phones: "a t a"})
	assert.Equal(t, 3, n)
	assert.Equal(t, map[string]interface{}{
		"word":   "ата",
		"phones": "a t a",
		"p0":     "a",
		"p1":     "t",
		"p2":     "a",
	}, pmap)
}

func TestMerge(t *testing.T) {
	tx := &fakeTx{}
	require.NoError(t, CreateIndexes(tx))
	n, err := Merge(tx, []lexicon.Entry{{Word: "<SIL>", Phones: "SIL"}, {Word: "ъ", Phones: ""}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, tx.calls, 4)
	assert.Equal(t, Indexes[0], tx.calls[0].cypher)
	assert.Equal(t, "SIL", tx.calls[2].params["p0"])
	assert.Equal(t, MemoQuery()(0), tx.calls[3].cypher)
}

func TestMergeError(t *testing.T) {
	tx := &fakeTx{failOn: 2}
	n, err := Merge(tx, []lexicon.Entry{{Word: "а", Phones: "a"}, {Word: "б", Phones: "b"}, {Word: "в", Phones: "v"}})
	assert.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestStore(t *testing.T) {
	session := &fakeSession{tx: &fakeTx{}}
	n, err := Store(session, []lexicon.Entry{{Word: "а", Phones: "a"}, {Word: "ба", Phones: "b a"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, session.txs)
	require.Len(t, session.tx.calls, len(Indexes)+2)
	assert.Equal(t, "ба", session.tx.calls[len(Indexes)+1].params["word"])
}

func TestStoreIndexError(t *testing.T) {
	session := &fakeSession{tx: &fakeTx{failOn: 1}}
	_, err := Store(session, []lexicon.Entry{{Word: "а", Phones: "a"}})
	assert.Error(t, err)
	assert.Equal(t, 1, session.txs)
}
