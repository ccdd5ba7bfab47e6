// Package events defines the typed orchestration event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - session.*
//   - question.*
//   - user_input.*
//   - turn_state.*
//   - interviewer_speech.*
//
// session events
//
//   - SessionStarted (session.started): a fresh interview session replaced
//     any prior one and is now in progress.
//   - SessionCompleted (session.completed): the engine signalled completion;
//     carries the final closing message.
//   - SessionReset (session.reset): the session was discarded back to the
//     not-started state.
//
// question events
//
//   - QuestionAsked (question.asked): a new current question was applied,
//     together with its advisor tip and the engine-assigned phase/topic.
//
// user_input events
//
//   - ListeningStarted (user_input.listening_started): a capture activation
//     began.
//   - ListeningStopped (user_input.listening_stopped): the activation ended
//     without producing a transcript.
//   - UserTranscriptFinal (user_input.transcript_final): the single final
//     transcript for the activation.
//   - CaptureFailed (user_input.capture_failed): the activation failed;
//     carries the reason.
//
// turn_state events
//
//   - TurnSubmitted (turn_state.submitted): an advance-turn request went out;
//     Skipped marks requests that forfeit recording the unanswered question.
//   - TurnApplied (turn_state.applied): the engine response was applied to
//     session state.
//   - TurnFailed (turn_state.failed): the advance-turn request failed and
//     session state was left unchanged.
//
// interviewer_speech events
//
//   - InterviewerUtteranceStarted (interviewer_speech.utterance_started):
//     playback of an utterance began.
//   - InterviewerUtteranceEnded (interviewer_speech.utterance_ended):
//     playback of an utterance ran to completion. Cancelled utterances do not
//     emit this.
package events
