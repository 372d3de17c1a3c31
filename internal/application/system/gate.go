package system

import "github.com/younwookim/talkscene/internal/domain/entity"

// CanStartDialogue reports whether the player may open a conversation this
// frame: the colliders overlap with positive area, no dialogue is showing
// and the intro cutscene is over.
func CanStartDialogue(player, npc entity.Rect, dialogueVisible, cutsceneFinished bool) bool {
	return cutsceneFinished && !dialogueVisible && player.Overlaps(npc)
}
