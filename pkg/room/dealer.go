package room

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"followthequeen-server/internal/rng"
	"followthequeen-server/pkg/account"
	"followthequeen-server/pkg/bot"
	"followthequeen-server/pkg/game"
	"followthequeen-server/pkg/room/gamefactory"

	"github.com/sirupsen/logrus"
)

var botRandom rng.Generator = rng.Crypto{}

type dealerState int

const (
	// stateClientEvent is sent when a client connects, disconnects, or changes status
	stateClientEvent dealerState = iota
	// stateGameEvent is sent when the game state changes
	stateGameEvent
)

// Dealer runs a single room. All game and client mutations happen on the
// dealer's run loop, so no locking is needed beyond the clients map.
type Dealer struct {
	pitBoss *PitBoss
	room    *account.Room
	logger  logrus.FieldLogger

	clients map[*Client]bool
	lock    sync.RWMutex

	game     *game.Table
	variant  string
	hand     *account.Hand
	baseline map[int64]int
	winners  []*game.Winner

	bots      map[int64]*bot.Bot
	nextBotID int64

	pending     *pendingGame
	logMessages []*game.LogMessage

	execInRunLoop chan func()
	stateChanged  chan dealerState
	close         chan bool
}

// gameData is the per-client view of the room's game
type gameData struct {
	State   *game.State        `json:"state"`
	Winners []*game.Winner     `json:"winners,omitempty"`
	Pending *pendingGame       `json:"pending,omitempty"`
	Logs    []*game.LogMessage `json:"logs"`
}

// NewDealer returns a new dealer for the room
func NewDealer(pitBoss *PitBoss, room *account.Room) *Dealer {
	return &Dealer{
		pitBoss:       pitBoss,
		room:          room,
		logger:        logrus.WithField("room", room.UUID),
		clients:       make(map[*Client]bool),
		bots:          make(map[int64]*bot.Bot),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan dealerState, 256),
		close:         make(chan bool),
	}
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift terminates the run loop. The dealer may not be reused.
func (d *Dealer) EndShift() {
	close(d.close)
}

func (d *Dealer) runLoop() {
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case s := <-d.stateChanged:
			d.sendState(s)
		case <-d.close:
			return
		}
	}
}

// AddClient attaches a connected client to the dealer
func (d *Dealer) AddClient(c *Client) {
	d.lock.Lock()
	d.clients[c] = true
	c.dealer = d
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		c.Send(&Response{Key: "game", Data: d.gameDataFor(c.player.ID)})
		d.sendState(stateClientEvent)
	}
}

// RemoveClient removes the client and returns true if no clients remain
func (d *Dealer) RemoveClient(c *Client) bool {
	d.lock.Lock()
	delete(d.clients, c)
	empty := len(d.clients) == 0
	d.lock.Unlock()

	if !empty {
		d.scheduleStateChange(stateClientEvent)
	}

	return empty
}

// ReceivedMessage queues an inbound client message onto the run loop
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	d.execInRunLoop <- func() {
		d.handleMessage(c, msg)
	}
}

func (d *Dealer) scheduleStateChange(s dealerState) {
	select {
	case d.stateChanged <- s:
	default:
		d.logger.Warn("stateChanged channel is full")
	}
}

func (d *Dealer) handleMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "createGame":
		d.handleCreateGame(c, msg)
	case "terminateGame":
		d.handleTerminateGame(c, msg)
	case "dealHand":
		d.handleDealHand(c, msg)
	case "addBot":
		d.handleAddBot(c, msg)
	case "playerStatus":
		d.handlePlayerStatus(c, msg)
	case "roomAdmin":
		d.handleRoomAdmin(c, msg)
	case "reveal":
		d.handleReveal(c, msg)
	case "state":
		c.Send(&Response{Key: "game", Data: d.gameDataFor(c.player.ID), Context: msg.Context})
	default:
		d.handleGameAction(c, msg)
	}
}

func (d *Dealer) handleCreateGame(c *Client, msg *PayloadIn) {
	if d.game != nil || d.pending != nil {
		c.Send(newErrorResponse(msg.Context, errors.New("a game is already in progress")))
		return
	}

	member, err := c.player.GetRoomMember(context.Background(), d.room)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if !member.CanStart && !d.canAdmin(c.player, member) {
		c.Send(newErrorResponse(msg.Context, errors.New("you cannot start a game")))
		return
	}

	if msg.Subject == "" {
		msg.Subject = d.room.Variant
	}

	pending, err := newPendingGame(c, msg)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	d.pending = pending
	go func() {
		<-pending.timer.C
		d.execInRunLoop <- func() {
			d.createGame(pending)
		}
	}()

	c.Send(OK(msg.Context))
	d.sendState(stateGameEvent)
}

func (d *Dealer) createGame(pending *pendingGame) {
	if d.pending != pending {
		// cancelled
		return
	}
	d.pending = nil

	factory, err := gamefactory.Get(pending.message.Subject)
	if err != nil {
		d.broadcastError(err)
		return
	}

	table, err := factory.CreateTable(d.logger, pending.message.AdditionalData)
	if err != nil {
		d.broadcastError(err)
		return
	}

	members, err := d.room.GetActiveMembersShifted(context.Background())
	if err != nil {
		d.broadcastError(err)
		return
	}

	for _, member := range members {
		if !d.isConnected(member.PlayerID) {
			continue
		}

		if _, err := table.AddPlayer(member.PlayerID, member.Player.DisplayName); err != nil {
			d.logger.WithError(err).WithField("player", member.PlayerID).Warn("could not seat player")
		}
	}

	for _, b := range d.bots {
		if _, err := table.AddPlayer(b.ID, b.Name); err != nil {
			d.logger.WithError(err).WithField("bot", b.ID).Warn("could not seat bot")
		}
	}

	d.game = table
	d.variant = pending.message.Subject
	d.nextHand()
}

func (d *Dealer) handleTerminateGame(c *Client, msg *PayloadIn) {
	member, err := c.player.GetRoomMember(context.Background(), d.room)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if !member.CanTerminate && !d.canAdmin(c.player, member) {
		c.Send(newErrorResponse(msg.Context, errors.New("you cannot terminate the game")))
		return
	}

	if pending := d.pending; pending != nil {
		pending.timer.Stop()
		d.pending = nil
	}

	d.game = nil
	d.hand = nil
	d.winners = nil
	d.logMessages = nil

	c.Send(OK(msg.Context))
	d.sendState(stateGameEvent)
}

func (d *Dealer) handleDealHand(c *Client, msg *PayloadIn) {
	if d.game == nil {
		c.Send(newErrorResponse(msg.Context, errors.New("no game in progress")))
		return
	}

	if d.hand != nil && d.hand.Ended.IsZero() {
		c.Send(newErrorResponse(msg.Context, errors.New("the current hand has not finished")))
		return
	}

	member, err := c.player.GetRoomMember(context.Background(), d.room)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if !member.CanStart && !d.canAdmin(c.player, member) {
		c.Send(newErrorResponse(msg.Context, errors.New("you cannot deal the next hand")))
		return
	}

	c.Send(OK(msg.Context))
	d.nextHand()
}

func (d *Dealer) nextHand() {
	d.winners = nil

	baseline := make(map[int64]int)
	for _, p := range d.game.Players() {
		baseline[p.ID] = p.Chips
	}
	d.baseline = baseline

	if err := d.game.NewHand(); err != nil {
		d.broadcastError(err)
		if errors.Is(err, game.ErrNotEnoughPlayers) {
			d.game = nil
			d.sendState(stateGameEvent)
		}

		return
	}

	hand, err := d.room.CreateHand(context.Background(), d.variant, d.game.Seed())
	if err != nil {
		d.logger.WithError(err).Error("could not create hand record")
		d.broadcastError(err)
		d.game = nil
		d.sendState(stateGameEvent)
		return
	}
	d.hand = hand

	d.ranGameAction()
}

func (d *Dealer) handleAddBot(c *Client, msg *PayloadIn) {
	if d.game != nil {
		c.Send(newErrorResponse(msg.Context, errors.New("cannot add a bot mid-game")))
		return
	}

	d.nextBotID--
	name, _ := msg.AdditionalData.GetString("name")
	if name == "" {
		name = fmt.Sprintf("Bot %d", -d.nextBotID)
	}

	b := bot.New(d.nextBotID, name, botRandom)
	d.bots[b.ID] = b

	c.Send(OK(msg.Context))
	d.sendState(stateClientEvent)
}

func (d *Dealer) handlePlayerStatus(c *Client, msg *PayloadIn) {
	member, err := c.player.GetRoomMember(context.Background(), d.room)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	switch msg.Subject {
	case "active":
		err = member.SetActive(context.Background(), true)
	case "inactive":
		err = member.SetActive(context.Background(), false)
	default:
		err = fmt.Errorf("unknown status: %s", msg.Subject)
	}

	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
	d.sendState(stateClientEvent)
}

func (d *Dealer) handleRoomAdmin(c *Client, msg *PayloadIn) {
	member, err := c.player.GetRoomMember(context.Background(), d.room)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if !d.canAdmin(c.player, member) {
		c.Send(newErrorResponse(msg.Context, errors.New("you are not a room admin")))
		return
	}

	playerID, ok := msg.AdditionalData.GetInt("playerId")
	if !ok {
		c.Send(newErrorResponse(msg.Context, errors.New("playerId is required")))
		return
	}

	player, err := account.GetPlayerByID(context.Background(), int64(playerID))
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	target, err := player.GetRoomMember(context.Background(), d.room)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	if v, ok := msg.AdditionalData.GetBool("isRoomAdmin"); ok {
		target.IsRoomAdmin = v
	}

	if v, ok := msg.AdditionalData.GetBool("canStart"); ok {
		target.CanStart = v
	}

	if v, ok := msg.AdditionalData.GetBool("canTerminate"); ok {
		target.CanTerminate = v
	}

	if err := target.Save(context.Background()); err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
	d.sendState(stateClientEvent)
}

func (d *Dealer) handleReveal(c *Client, msg *PayloadIn) {
	if d.game == nil {
		c.Send(newErrorResponse(msg.Context, errors.New("no game in progress")))
		return
	}

	if err := d.game.RevealCards(c.player.ID); err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
	d.sendState(stateGameEvent)
}

func (d *Dealer) handleGameAction(c *Client, msg *PayloadIn) {
	if d.game == nil {
		c.Send(newErrorResponse(msg.Context, errors.New("no game in progress")))
		return
	}

	action, err := game.ActionFromString(msg.Action)
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	amount, _ := msg.AdditionalData.GetInt("amount")
	if err := d.game.ApplyAction(c.player.ID, action, amount); err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
	d.ranGameAction()
}

// ranGameAction advances the game after any successful action and broadcasts
// the resulting state
func (d *Dealer) ranGameAction() {
	if err := d.advanceGame(); err != nil {
		d.broadcastError(err)
	}

	if d.game != nil {
		d.addLogMessages(d.game.FlushLogs())
	}

	d.sendState(stateGameEvent)
}

// advanceGame walks phases while the betting round is settled, runs bot
// turns, and settles the hand once the showdown is reached
func (d *Dealer) advanceGame() error {
	for {
		if d.playBots() {
			continue
		}

		if d.game.Phase() == game.PhaseShowdown {
			if d.hand != nil && d.hand.Ended.IsZero() {
				return d.finishHand()
			}

			return nil
		}

		if !d.game.IsRoundComplete() {
			return nil
		}

		if _, err := d.game.AdvancePhase(); err != nil {
			return err
		}
	}
}

// playBots applies a single bot action if it is a bot's turn
func (d *Dealer) playBots() bool {
	turn := d.game.CurrentTurn()
	if turn == nil {
		return false
	}

	b, found := d.bots[turn.ID]
	if !found {
		return false
	}

	action, amount := b.Decide(d.game)
	if err := d.game.ApplyAction(b.ID, action, amount); err != nil {
		d.logger.WithError(err).WithField("bot", b.ID).Warn("bot action failed, folding")
		if err := d.game.ApplyAction(b.ID, game.ActionFold, 0); err != nil {
			d.logger.WithError(err).Error("bot could not fold")
			return false
		}
	}

	return true
}

func (d *Dealer) finishHand() error {
	winners, err := d.game.DetermineWinners()
	if err != nil {
		return err
	}
	d.winners = winners

	adjustments := make(map[int64]int)
	for _, p := range d.game.Players() {
		if p.ID <= 0 {
			// bots do not have ledger rows
			continue
		}

		if delta := p.Chips - d.baseline[p.ID]; delta != 0 {
			adjustments[p.ID] = delta
		}
	}

	record := struct {
		Winners []*game.Winner `json:"winners"`
		State   *game.State    `json:"state"`
	}{winners, d.game.Snapshot(0)}

	if err := d.hand.EndHand(context.Background(), record, adjustments); err != nil {
		d.logger.WithError(err).Error("could not end hand")
		return err
	}

	d.broadcast(&Response{Key: "gameEnded", Data: winners})
	d.scheduleStateChange(stateClientEvent)
	return nil
}

func (d *Dealer) canAdmin(player *account.Player, member *account.RoomMember) bool {
	return player.IsSiteAdmin || member.IsRoomAdmin || d.room.PlayerID == player.ID
}

func (d *Dealer) isConnected(playerID int64) bool {
	d.lock.RLock()
	defer d.lock.RUnlock()

	for c := range d.clients {
		if c.player.ID == playerID {
			return true
		}
	}

	return false
}

func (d *Dealer) gameDataFor(viewerID int64) *gameData {
	data := &gameData{
		Winners: d.winners,
		Pending: d.pending,
		Logs:    d.logMessages,
	}

	if d.game != nil {
		data.State = d.game.Snapshot(viewerID)
	}

	return data
}

func (d *Dealer) sendState(s dealerState) {
	switch s {
	case stateClientEvent:
		d.sendClientState()
	case stateGameEvent:
		d.sendGameState()
	}
}

func (d *Dealer) sendGameState() {
	d.lock.RLock()
	defer d.lock.RUnlock()

	for c := range d.clients {
		if !c.Send(&Response{Key: "game", Data: d.gameDataFor(c.player.ID)}) {
			d.logger.WithField("player", c.String()).Warn("send channel is full")
		}
	}
}

func (d *Dealer) sendClientState() {
	members, err := d.room.GetMembers(context.Background())
	if err != nil {
		d.logger.WithError(err).Error("could not load members")
		return
	}

	seated := make(map[int64]bool)
	if d.game != nil {
		for _, p := range d.game.Players() {
			seated[p.ID] = true
		}
	}

	state := make([]*clientStateMember, 0, len(members))
	for _, member := range members {
		state = append(state, &clientStateMember{
			RoomMember:  member,
			IsConnected: d.isConnected(member.PlayerID),
			IsSeated:    seated[member.PlayerID],
		})
	}

	d.broadcast(&Response{Key: "clientState", Data: state})
}

func (d *Dealer) broadcast(msg *Response) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	for c := range d.clients {
		if !c.Send(msg) {
			d.logger.WithField("player", c.String()).Warn("send channel is full")
		}
	}
}

func (d *Dealer) broadcastError(err error) {
	d.broadcast(newErrorResponse("", err))
}
